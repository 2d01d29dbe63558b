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

// Integer compare entry points. Each sets bit i of vd to the result for every
// active body element and leaves every other bit of vd untouched.

// VMSeqVV computes vs2 == vs1.
func VMSeqVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execCompare(vrf, c, CondEQ, vd, vs2, vsrc(vs1))
}

// VMSeqVX computes vs2 == rs1.
func VMSeqVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execCompare(vrf, c, CondEQ, vd, vs2, xsrc(rs1))
}

// VMSeqVI computes vs2 == imm.
func VMSeqVI(vrf []byte, c Config, vd, vs2 int, imm uint8) Status {
	return execCompare(vrf, c, CondEQ, vd, vs2, isrc(imm))
}

// VMSneVV computes vs2 != vs1.
func VMSneVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execCompare(vrf, c, CondNE, vd, vs2, vsrc(vs1))
}

// VMSneVX computes vs2 != rs1.
func VMSneVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execCompare(vrf, c, CondNE, vd, vs2, xsrc(rs1))
}

// VMSneVI computes vs2 != imm.
func VMSneVI(vrf []byte, c Config, vd, vs2 int, imm uint8) Status {
	return execCompare(vrf, c, CondNE, vd, vs2, isrc(imm))
}

// VMSltUVV computes vs2 < vs1 unsigned.
func VMSltUVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execCompare(vrf, c, CondLTU, vd, vs2, vsrc(vs1))
}

// VMSltUVX computes vs2 < rs1 unsigned.
func VMSltUVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execCompare(vrf, c, CondLTU, vd, vs2, xsrc(rs1))
}

// VMSltVV computes vs2 < vs1 signed.
func VMSltVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execCompare(vrf, c, CondLT, vd, vs2, vsrc(vs1))
}

// VMSltVX computes vs2 < rs1 signed.
func VMSltVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execCompare(vrf, c, CondLT, vd, vs2, xsrc(rs1))
}

// VMSleUVV computes vs2 <= vs1 unsigned.
func VMSleUVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execCompare(vrf, c, CondLEU, vd, vs2, vsrc(vs1))
}

// VMSleUVX computes vs2 <= rs1 unsigned.
func VMSleUVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execCompare(vrf, c, CondLEU, vd, vs2, xsrc(rs1))
}

// VMSleUVI computes vs2 <= imm unsigned.
func VMSleUVI(vrf []byte, c Config, vd, vs2 int, imm uint8) Status {
	return execCompare(vrf, c, CondLEU, vd, vs2, isrc(imm))
}

// VMSleVV computes vs2 <= vs1 signed.
func VMSleVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execCompare(vrf, c, CondLE, vd, vs2, vsrc(vs1))
}

// VMSleVX computes vs2 <= rs1 signed.
func VMSleVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execCompare(vrf, c, CondLE, vd, vs2, xsrc(rs1))
}

// VMSleVI computes vs2 <= imm signed.
func VMSleVI(vrf []byte, c Config, vd, vs2 int, imm uint8) Status {
	return execCompare(vrf, c, CondLE, vd, vs2, isrc(imm))
}

// VMSgtUVV computes vs2 > vs1 unsigned.
func VMSgtUVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execCompare(vrf, c, CondGTU, vd, vs2, vsrc(vs1))
}

// VMSgtUVX computes vs2 > rs1 unsigned.
func VMSgtUVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execCompare(vrf, c, CondGTU, vd, vs2, xsrc(rs1))
}

// VMSgtUVI computes vs2 > imm unsigned.
func VMSgtUVI(vrf []byte, c Config, vd, vs2 int, imm uint8) Status {
	return execCompare(vrf, c, CondGTU, vd, vs2, isrc(imm))
}

// VMSgtVV computes vs2 > vs1 signed.
func VMSgtVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execCompare(vrf, c, CondGT, vd, vs2, vsrc(vs1))
}

// VMSgtVX computes vs2 > rs1 signed.
func VMSgtVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execCompare(vrf, c, CondGT, vd, vs2, xsrc(rs1))
}

// VMSgtVI computes vs2 > imm signed.
func VMSgtVI(vrf []byte, c Config, vd, vs2 int, imm uint8) Status {
	return execCompare(vrf, c, CondGT, vd, vs2, isrc(imm))
}

// VMSgeUVV computes vs2 >= vs1 unsigned.
func VMSgeUVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execCompare(vrf, c, CondGEU, vd, vs2, vsrc(vs1))
}

// VMSgeUVX computes vs2 >= rs1 unsigned.
func VMSgeUVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execCompare(vrf, c, CondGEU, vd, vs2, xsrc(rs1))
}

// VMSgeUVI computes vs2 >= imm unsigned.
func VMSgeUVI(vrf []byte, c Config, vd, vs2 int, imm uint8) Status {
	return execCompare(vrf, c, CondGEU, vd, vs2, isrc(imm))
}

// VMSgeVV computes vs2 >= vs1 signed.
func VMSgeVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execCompare(vrf, c, CondGE, vd, vs2, vsrc(vs1))
}

// VMSgeVX computes vs2 >= rs1 signed.
func VMSgeVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execCompare(vrf, c, CondGE, vd, vs2, xsrc(rs1))
}

// VMSgeVI computes vs2 >= imm signed.
func VMSgeVI(vrf []byte, c Config, vd, vs2 int, imm uint8) Status {
	return execCompare(vrf, c, CondGE, vd, vs2, isrc(imm))
}

// Carry and borrow producers. The *M forms chain a carry-in (borrow-in) from
// v0; the plain forms assume none.

// VMAdcVVM writes the carry out of vs2 + vs1 + v0.
func VMAdcVVM(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execCarryOut(vrf, c, false, true, vd, vs2, vsrc(vs1))
}

// VMAdcVV writes the carry out of vs2 + vs1.
func VMAdcVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execCarryOut(vrf, c, false, false, vd, vs2, vsrc(vs1))
}

// VMAdcVXM writes the carry out of vs2 + rs1 + v0.
func VMAdcVXM(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execCarryOut(vrf, c, false, true, vd, vs2, xsrc(rs1))
}

// VMAdcVX writes the carry out of vs2 + rs1.
func VMAdcVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execCarryOut(vrf, c, false, false, vd, vs2, xsrc(rs1))
}

// VMAdcVIM writes the carry out of vs2 + imm + v0.
func VMAdcVIM(vrf []byte, c Config, vd, vs2 int, imm uint8) Status {
	return execCarryOut(vrf, c, false, true, vd, vs2, isrc(imm))
}

// VMAdcVI writes the carry out of vs2 + imm.
func VMAdcVI(vrf []byte, c Config, vd, vs2 int, imm uint8) Status {
	return execCarryOut(vrf, c, false, false, vd, vs2, isrc(imm))
}

// VMSbcVVM writes the borrow out of vs2 - vs1 - v0.
func VMSbcVVM(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execCarryOut(vrf, c, true, true, vd, vs2, vsrc(vs1))
}

// VMSbcVV writes the borrow out of vs2 - vs1.
func VMSbcVV(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execCarryOut(vrf, c, true, false, vd, vs2, vsrc(vs1))
}

// VMSbcVXM writes the borrow out of vs2 - rs1 - v0.
func VMSbcVXM(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execCarryOut(vrf, c, true, true, vd, vs2, xsrc(rs1))
}

// VMSbcVX writes the borrow out of vs2 - rs1.
func VMSbcVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execCarryOut(vrf, c, true, false, vd, vs2, xsrc(rs1))
}

// Mask-register logical operations over bits [vstart, vl).

// VMAndMM writes vs2 & vs1.
func VMAndMM(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execMaskLogic(vrf, c, MaskAnd, vd, vs2, vs1)
}

// VMNandMM writes ^(vs2 & vs1).
func VMNandMM(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execMaskLogic(vrf, c, MaskNand, vd, vs2, vs1)
}

// VMAndNotMM writes vs2 & ^vs1.
func VMAndNotMM(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execMaskLogic(vrf, c, MaskAndNot, vd, vs2, vs1)
}

// VMXorMM writes vs2 ^ vs1.
func VMXorMM(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execMaskLogic(vrf, c, MaskXor, vd, vs2, vs1)
}

// VMOrMM writes vs2 | vs1.
func VMOrMM(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execMaskLogic(vrf, c, MaskOr, vd, vs2, vs1)
}

// VMNorMM writes ^(vs2 | vs1).
func VMNorMM(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execMaskLogic(vrf, c, MaskNor, vd, vs2, vs1)
}

// VMOrNotMM writes vs2 | ^vs1.
func VMOrNotMM(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execMaskLogic(vrf, c, MaskOrNot, vd, vs2, vs1)
}

// VMXnorMM writes ^(vs2 ^ vs1).
func VMXnorMM(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execMaskLogic(vrf, c, MaskXnor, vd, vs2, vs1)
}
