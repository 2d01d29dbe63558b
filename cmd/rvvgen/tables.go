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

package main

// Instruction tables. Each insn expands to one entry point per form; $src in
// doc is replaced by the vs1, rs1 or imm operand name.

var tables = []table{aluTable, mulTable, fixedTable}

var aluTable = table{
	name: "alu",
	doc: []string{
		"Single-width integer arithmetic, logic, shift and min/max entry points.",
		"Immediates are sign-extended, except shift amounts which are unsigned.",
	},
	insns: []insn{
		{name: "VAdd", op: "opAdd", forms: []form{vv, vx, vi}, doc: "writes vs2 + $src."},
		{name: "VSub", op: "opSub", forms: []form{vv, vx}, doc: "writes vs2 - $src."},
		{name: "VRSub", op: "opRSub", forms: []form{vx, vi}, doc: "writes $src - vs2."},
		{name: "VAnd", op: "opAnd", forms: []form{vv, vx, vi}, doc: "writes vs2 & $src."},
		{name: "VOr", op: "opOr", forms: []form{vv, vx, vi}, doc: "writes vs2 | $src."},
		{name: "VXor", op: "opXor", forms: []form{vv, vx, vi}, doc: "writes vs2 ^ $src."},
		{name: "VSll", op: "opSll", forms: []form{vv, vx, vi}, doc: "writes vs2 << ($src mod SEW)."},
		{name: "VSrl", op: "opSrl", forms: []form{vv, vx, vi}, doc: "writes vs2 >> ($src mod SEW), zero filling."},
		{name: "VSra", op: "opSra", forms: []form{vv, vx, vi}, doc: "writes vs2 >> ($src mod SEW), sign filling."},
		{name: "VMinU", op: "opMinU", forms: []form{vv, vx}, doc: "writes the unsigned minimum of vs2 and $src."},
		{name: "VMin", op: "opMin", forms: []form{vv, vx}, doc: "writes the signed minimum of vs2 and $src."},
		{name: "VMaxU", op: "opMaxU", forms: []form{vv, vx}, doc: "writes the unsigned maximum of vs2 and $src."},
		{name: "VMax", op: "opMax", forms: []form{vv, vx}, doc: "writes the signed maximum of vs2 and $src."},
	},
}

var mulTable = table{
	name: "mul",
	doc: []string{
		"Multiply, divide and single-width multiply-add entry points.",
	},
	insns: []insn{
		{name: "VMul", op: "opMul", forms: []form{vv, vx}, doc: "writes the low SEW bits of vs2 * $src."},
		{name: "VMulH", op: "opMulH", forms: []form{vv, vx}, doc: "writes the high SEW bits of signed vs2 * signed $src."},
		{name: "VMulHU", op: "opMulHU", forms: []form{vv, vx}, doc: "writes the high SEW bits of unsigned vs2 * unsigned $src."},
		{name: "VMulHSU", op: "opMulHSU", forms: []form{vv, vx}, doc: "writes the high SEW bits of signed vs2 * unsigned $src."},
		{name: "VDivU", op: "opDivU", forms: []form{vv, vx}, doc: "writes unsigned vs2 / $src; division by zero gives all ones."},
		{name: "VDiv", op: "opDiv", forms: []form{vv, vx}, doc: "writes signed vs2 / $src; division by zero gives -1 and MIN / -1 gives MIN."},
		{name: "VRemU", op: "opRemU", forms: []form{vv, vx}, doc: "writes unsigned vs2 % $src; remainder by zero gives vs2."},
		{name: "VRem", op: "opRem", forms: []form{vv, vx}, doc: "writes signed vs2 % $src; remainder by zero gives vs2 and MIN % -1 gives 0."},
		{name: "VMAcc", op: "opMAcc", forms: []form{vv, vx}, doc: "writes vd + $src * vs2."},
		{name: "VNMSac", op: "opNMSac", forms: []form{vv, vx}, doc: "writes vd - $src * vs2."},
		{name: "VMAdd", op: "opMAdd", forms: []form{vv, vx}, doc: "writes $src * vd + vs2."},
		{name: "VNMSub", op: "opNMSub", forms: []form{vv, vx}, doc: "writes vs2 - $src * vd."},
	},
}

var fixedTable = table{
	name: "fixed",
	doc: []string{
		"Fixed-point entry points. Saturating forms OR their clamp report into",
		"*vxsat, which may be nil; averaging, fractional multiply and scaling shifts",
		"round with c.VXRM.",
	},
	insns: []insn{
		{name: "VSAddU", op: "opSAddU", forms: []form{vv, vx, vi}, sat: true, doc: "writes the unsigned saturating sum of vs2 and $src."},
		{name: "VSAdd", op: "opSAdd", forms: []form{vv, vx, vi}, sat: true, doc: "writes the signed saturating sum of vs2 and $src."},
		{name: "VSSubU", op: "opSSubU", forms: []form{vv, vx}, sat: true, doc: "writes the unsigned saturating difference vs2 - $src."},
		{name: "VSSub", op: "opSSub", forms: []form{vv, vx}, sat: true, doc: "writes the signed saturating difference vs2 - $src."},
		{name: "VAAddU", op: "opAAddU", forms: []form{vv, vx}, doc: "writes (vs2 + $src) >> 1 unsigned, rounded by c.VXRM."},
		{name: "VAAdd", op: "opAAdd", forms: []form{vv, vx}, doc: "writes (vs2 + $src) >> 1 signed, rounded by c.VXRM."},
		{name: "VASubU", op: "opASubU", forms: []form{vv, vx}, doc: "writes (vs2 - $src) >> 1 unsigned, rounded by c.VXRM."},
		{name: "VASub", op: "opASub", forms: []form{vv, vx}, doc: "writes (vs2 - $src) >> 1 signed, rounded by c.VXRM."},
		{name: "VSMul", op: "opSMul", forms: []form{vv, vx}, sat: true, doc: "writes the saturating fractional product (vs2 * $src) >> (SEW-1), rounded by c.VXRM."},
		{name: "VSSrl", op: "opSSrl", forms: []form{vv, vx, vi}, doc: "writes vs2 >> ($src mod SEW) logical, rounded by c.VXRM."},
		{name: "VSSra", op: "opSSra", forms: []form{vv, vx, vi}, doc: "writes vs2 >> ($src mod SEW) arithmetic, rounded by c.VXRM."},
	},
}
