// Copyright 2025 go-rvv Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rvv

// Widening entry points write 2*SEW elements into a 2*LMUL group.

// VWAddUVV writes zext(vs2) + zext(vs1).
func VWAddUVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execWiden(vrf, c, opWAddU, vd, vs2, vsrc(vs1), false)
}

// VWAddUVX writes zext(vs2) + zext(rs1).
func VWAddUVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execWiden(vrf, c, opWAddU, vd, vs2, xsrc(rs1), false)
}

// VWAddUWV writes vs2 + zext(vs1).
func VWAddUWV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execWiden(vrf, c, opWAddU, vd, vs2, vsrc(vs1), true)
}

// VWAddUWX writes vs2 + zext(rs1).
func VWAddUWX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execWiden(vrf, c, opWAddU, vd, vs2, xsrc(rs1), true)
}

// VWAddVV writes sext(vs2) + sext(vs1).
func VWAddVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execWiden(vrf, c, opWAdd, vd, vs2, vsrc(vs1), false)
}

// VWAddVX writes sext(vs2) + sext(rs1).
func VWAddVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execWiden(vrf, c, opWAdd, vd, vs2, xsrc(rs1), false)
}

// VWAddWV writes vs2 + sext(vs1).
func VWAddWV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execWiden(vrf, c, opWAdd, vd, vs2, vsrc(vs1), true)
}

// VWAddWX writes vs2 + sext(rs1).
func VWAddWX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execWiden(vrf, c, opWAdd, vd, vs2, xsrc(rs1), true)
}

// VWSubUVV writes zext(vs2) - zext(vs1).
func VWSubUVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execWiden(vrf, c, opWSubU, vd, vs2, vsrc(vs1), false)
}

// VWSubUVX writes zext(vs2) - zext(rs1).
func VWSubUVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execWiden(vrf, c, opWSubU, vd, vs2, xsrc(rs1), false)
}

// VWSubUWV writes vs2 - zext(vs1).
func VWSubUWV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execWiden(vrf, c, opWSubU, vd, vs2, vsrc(vs1), true)
}

// VWSubUWX writes vs2 - zext(rs1).
func VWSubUWX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execWiden(vrf, c, opWSubU, vd, vs2, xsrc(rs1), true)
}

// VWSubVV writes sext(vs2) - sext(vs1).
func VWSubVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execWiden(vrf, c, opWSub, vd, vs2, vsrc(vs1), false)
}

// VWSubVX writes sext(vs2) - sext(rs1).
func VWSubVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execWiden(vrf, c, opWSub, vd, vs2, xsrc(rs1), false)
}

// VWSubWV writes vs2 - sext(vs1).
func VWSubWV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execWiden(vrf, c, opWSub, vd, vs2, vsrc(vs1), true)
}

// VWSubWX writes vs2 - sext(rs1).
func VWSubWX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execWiden(vrf, c, opWSub, vd, vs2, xsrc(rs1), true)
}

// VWMulUVV writes zext(vs2) * zext(vs1).
func VWMulUVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execWiden(vrf, c, opWMulU, vd, vs2, vsrc(vs1), false)
}

// VWMulUVX writes zext(vs2) * zext(rs1).
func VWMulUVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execWiden(vrf, c, opWMulU, vd, vs2, xsrc(rs1), false)
}

// VWMulVV writes sext(vs2) * sext(vs1).
func VWMulVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execWiden(vrf, c, opWMul, vd, vs2, vsrc(vs1), false)
}

// VWMulVX writes sext(vs2) * sext(rs1).
func VWMulVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execWiden(vrf, c, opWMul, vd, vs2, xsrc(rs1), false)
}

// VWMulSUVV writes sext(vs2) * zext(vs1).
func VWMulSUVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execWiden(vrf, c, opWMulSU, vd, vs2, vsrc(vs1), false)
}

// VWMulSUVX writes sext(vs2) * zext(rs1).
func VWMulSUVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execWiden(vrf, c, opWMulSU, vd, vs2, xsrc(rs1), false)
}

// VWMAccUVV writes vd + zext(vs1) * zext(vs2).
func VWMAccUVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execWiden(vrf, c, opWMAccU, vd, vs2, vsrc(vs1), false)
}

// VWMAccUVX writes vd + zext(rs1) * zext(vs2).
func VWMAccUVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execWiden(vrf, c, opWMAccU, vd, vs2, xsrc(rs1), false)
}

// VWMAccVV writes vd + sext(vs1) * sext(vs2).
func VWMAccVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execWiden(vrf, c, opWMAcc, vd, vs2, vsrc(vs1), false)
}

// VWMAccVX writes vd + sext(rs1) * sext(vs2).
func VWMAccVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execWiden(vrf, c, opWMAcc, vd, vs2, xsrc(rs1), false)
}

// VWMAccSUVV writes vd + sext(vs1) * zext(vs2).
func VWMAccSUVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execWiden(vrf, c, opWMAccSU, vd, vs2, vsrc(vs1), false)
}

// VWMAccSUVX writes vd + sext(rs1) * zext(vs2).
func VWMAccSUVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execWiden(vrf, c, opWMAccSU, vd, vs2, xsrc(rs1), false)
}

// VWMAccUSVX writes vd + zext(rs1) * sext(vs2).
func VWMAccUSVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execWiden(vrf, c, opWMAccUS, vd, vs2, xsrc(rs1), false)
}

// Integer extension entry points read a source of SEW/2, SEW/4 or SEW/8
// bits with a proportionally smaller multiplier.

// VZextVF2 zero-extends SEW/2-bit elements of vs2.
func VZextVF2(vrf []byte, c Config, vd, vs2 int) Status {
	return execExtend(vrf, c, 2, false, vd, vs2)
}

// VZextVF4 zero-extends SEW/4-bit elements of vs2.
func VZextVF4(vrf []byte, c Config, vd, vs2 int) Status {
	return execExtend(vrf, c, 4, false, vd, vs2)
}

// VZextVF8 zero-extends SEW/8-bit elements of vs2.
func VZextVF8(vrf []byte, c Config, vd, vs2 int) Status {
	return execExtend(vrf, c, 8, false, vd, vs2)
}

// VSextVF2 sign-extends SEW/2-bit elements of vs2.
func VSextVF2(vrf []byte, c Config, vd, vs2 int) Status {
	return execExtend(vrf, c, 2, true, vd, vs2)
}

// VSextVF4 sign-extends SEW/4-bit elements of vs2.
func VSextVF4(vrf []byte, c Config, vd, vs2 int) Status {
	return execExtend(vrf, c, 4, true, vd, vs2)
}

// VSextVF8 sign-extends SEW/8-bit elements of vs2.
func VSextVF8(vrf []byte, c Config, vd, vs2 int) Status {
	return execExtend(vrf, c, 8, true, vd, vs2)
}

// Narrowing entry points read 2*SEW elements from vs2 and write SEW.
// Immediates are unsigned shift amounts.

// VNSrlWV writes vs2 >> (vs1 mod 2*SEW), zero filling, truncated to SEW.
func VNSrlWV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execNarrow(vrf, c, opNSrl, vd, vs2, vsrc(vs1), nil)
}

// VNSrlWX writes vs2 >> (rs1 mod 2*SEW), zero filling, truncated to SEW.
func VNSrlWX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execNarrow(vrf, c, opNSrl, vd, vs2, xsrc(rs1), nil)
}

// VNSrlWI writes vs2 >> (imm mod 2*SEW), zero filling, truncated to SEW.
func VNSrlWI(vrf []byte, c Config, vd, vs2 int, imm uint8) Status {
	return execNarrow(vrf, c, opNSrl, vd, vs2, isrc(imm), nil)
}

// VNSraWV writes vs2 >> (vs1 mod 2*SEW), sign filling, truncated to SEW.
func VNSraWV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execNarrow(vrf, c, opNSra, vd, vs2, vsrc(vs1), nil)
}

// VNSraWX writes vs2 >> (rs1 mod 2*SEW), sign filling, truncated to SEW.
func VNSraWX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execNarrow(vrf, c, opNSra, vd, vs2, xsrc(rs1), nil)
}

// VNSraWI writes vs2 >> (imm mod 2*SEW), sign filling, truncated to SEW.
func VNSraWI(vrf []byte, c Config, vd, vs2 int, imm uint8) Status {
	return execNarrow(vrf, c, opNSra, vd, vs2, isrc(imm), nil)
}

// VNClipUWV writes vs2 >> (vs1 mod 2*SEW) rounded by c.VXRM and clipped to the unsigned SEW range.
func VNClipUWV(vrf []byte, c Config, vd, vs2, vs1 int, vxsat *bool) Status {
	return execNarrow(vrf, c, opNClipU, vd, vs2, vsrc(vs1), vxsat)
}

// VNClipUWX writes vs2 >> (rs1 mod 2*SEW) rounded by c.VXRM and clipped to the unsigned SEW range.
func VNClipUWX(vrf []byte, c Config, vd, vs2 int, rs1 []byte, vxsat *bool) Status {
	return execNarrow(vrf, c, opNClipU, vd, vs2, xsrc(rs1), vxsat)
}

// VNClipUWI writes vs2 >> (imm mod 2*SEW) rounded by c.VXRM and clipped to the unsigned SEW range.
func VNClipUWI(vrf []byte, c Config, vd, vs2 int, imm uint8, vxsat *bool) Status {
	return execNarrow(vrf, c, opNClipU, vd, vs2, isrc(imm), vxsat)
}

// VNClipWV writes vs2 >> (vs1 mod 2*SEW) rounded by c.VXRM and clipped to the signed SEW range.
func VNClipWV(vrf []byte, c Config, vd, vs2, vs1 int, vxsat *bool) Status {
	return execNarrow(vrf, c, opNClip, vd, vs2, vsrc(vs1), vxsat)
}

// VNClipWX writes vs2 >> (rs1 mod 2*SEW) rounded by c.VXRM and clipped to the signed SEW range.
func VNClipWX(vrf []byte, c Config, vd, vs2 int, rs1 []byte, vxsat *bool) Status {
	return execNarrow(vrf, c, opNClip, vd, vs2, xsrc(rs1), vxsat)
}

// VNClipWI writes vs2 >> (imm mod 2*SEW) rounded by c.VXRM and clipped to the signed SEW range.
func VNClipWI(vrf []byte, c Config, vd, vs2 int, imm uint8, vxsat *bool) Status {
	return execNarrow(vrf, c, opNClip, vd, vs2, isrc(imm), vxsat)
}
