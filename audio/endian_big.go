// SPDX-License-Identifier: EPL-2.0

//go:build mips || mips64 || ppc64 || s390x

package audio

// FlagNativeEndian marks samples in the byte order of the build target.
const FlagNativeEndian PCMFlags = 0
