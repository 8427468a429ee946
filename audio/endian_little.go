// SPDX-License-Identifier: EPL-2.0

//go:build 386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm

package audio

// FlagNativeEndian marks samples in the byte order of the build target.
const FlagNativeEndian = FlagLittleEndian
