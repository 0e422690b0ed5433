package virt6502

type instruction struct {
	mode   addrMode
	op     operation
	cycles byte
}

func buildTable(cfg Config) [256]instruction {
	modes, ops := &nmosModes, &nmosOps
	if cfg.Variant == CMOS {
		modes, ops = &cmosModes, &cmosOps
	}
	var table [256]instruction
	for i := range table {
		inst := instruction{mode: modes[i], op: ops[i], cycles: ticks[i]}
		if cfg.Variant == NMOS && !cfg.Undocumented {
			if inst.op.undocumented() || i == undocumentedSBC {
				inst.op = opNOP
			}
		}
		table[i] = inst
	}

	if cfg.Variant == NMOS {
		for opcode, cycles := range nmosTicks {
			table[opcode].cycles = cycles
		}
	} else {
		for opcode, cycles := range cmosTicks {
			table[opcode].cycles = cycles
		}
		// columns 3 and B are single cycle NOPs on the 65C02
		for row := 0x00; row < 0x100; row += 0x10 {
			table[row|0x03].cycles = 1
			table[row|0x0b].cycles = 1
		}
	}
	return table
}

// NMOS illegal NOPs whose slots carry 65C02 op costs in ticks
var nmosTicks = map[byte]byte{
	0x04: 3, 0x0c: 4, 0x14: 4, 0x1c: 4,
	0x5a: 2, 0x7a: 2, 0xda: 2, 0xfa: 2,
	0x7c: 4, 0x9c: 5,
}

// 65C02 costs that differ from ticks
var cmosTicks = map[byte]byte{
	0x6c: 6,          // JMP (abs) no longer wraps, takes a cycle more
	0x7a: 4, 0xfa: 4, // PLY, PLX
	0x5c: 8,
	0x0f: 5, 0x1f: 5, 0x2f: 5, 0x3f: 5, 0x4f: 5, 0x5f: 5, 0x6f: 5, 0x7f: 5, // BBR
	0x8f: 5, 0x9f: 5, 0xaf: 5, 0xbf: 5, 0xcf: 5, 0xdf: 5, 0xef: 5, 0xff: 5, // BBS
}

// the NMOS map's second SBC #imm
const undocumentedSBC = 0xeb

var nmosModes = [256]addrMode{
	/*      0    1    2    3    4    5    6    7    8    9    A    B    C    D    E    F */
	/* 0 */ imp, izx, imp, izx, zpg, zpg, zpg, zpg, imp, imm, acc, imm, abs, abs, abs, abs,
	/* 1 */ rel, izy, imp, izy, zpx, zpx, zpx, zpx, imp, aby, imp, aby, abx, abx, abx, abx,
	/* 2 */ abs, izx, imp, izx, zpg, zpg, zpg, zpg, imp, imm, acc, imm, abs, abs, abs, abs,
	/* 3 */ rel, izy, imp, izy, zpx, zpx, zpx, zpx, imp, aby, imp, aby, abx, abx, abx, abx,
	/* 4 */ imp, izx, imp, izx, zpg, zpg, zpg, zpg, imp, imm, acc, imm, abs, abs, abs, abs,
	/* 5 */ rel, izy, imp, izy, zpx, zpx, zpx, zpx, imp, aby, imp, aby, abx, abx, abx, abx,
	/* 6 */ imp, izx, imp, izx, zpg, zpg, zpg, zpg, imp, imm, acc, imm, ind, abs, abs, abs,
	/* 7 */ rel, izy, imp, izy, zpx, zpx, zpx, zpx, imp, aby, imp, aby, abx, abx, abx, abx,
	/* 8 */ imm, izx, imm, izx, zpg, zpg, zpg, zpg, imp, imm, imp, imm, abs, abs, abs, abs,
	/* 9 */ rel, izy, imp, izy, zpx, zpx, zpy, zpy, imp, aby, imp, aby, abx, abx, aby, aby,
	/* A */ imm, izx, imm, izx, zpg, zpg, zpg, zpg, imp, imm, imp, imm, abs, abs, abs, abs,
	/* B */ rel, izy, imp, izy, zpx, zpx, zpy, zpy, imp, aby, imp, aby, abx, abx, aby, aby,
	/* C */ imm, izx, imm, izx, zpg, zpg, zpg, zpg, imp, imm, imp, imm, abs, abs, abs, abs,
	/* D */ rel, izy, imp, izy, zpx, zpx, zpx, zpx, imp, aby, imp, aby, abx, abx, abx, abx,
	/* E */ imm, izx, imm, izx, zpg, zpg, zpg, zpg, imp, imm, imp, imm, abs, abs, abs, abs,
	/* F */ rel, izy, imp, izy, zpx, zpx, zpx, zpx, imp, aby, imp, aby, abx, abx, abx, abx,
}

var cmosModes = [256]addrMode{
	/*      0    1    2    3    4    5    6    7    8    9    A    B    C    D    E    F */
	/* 0 */ imp, izx, imm, imp, zpg, zpg, zpg, zpg, imp, imm, acc, imp, abs, abs, abs, rlb,
	/* 1 */ rel, izy, izp, imp, zpg, zpx, zpx, zpg, imp, aby, acc, imp, abs, abx, abx, rlb,
	/* 2 */ abs, izx, imm, imp, zpg, zpg, zpg, zpg, imp, imm, acc, imp, abs, abs, abs, rlb,
	/* 3 */ rel, izy, izp, imp, zpx, zpx, zpx, zpg, imp, aby, acc, imp, abx, abx, abx, rlb,
	/* 4 */ imp, izx, imm, imp, zpg, zpg, zpg, zpg, imp, imm, acc, imp, abs, abs, abs, rlb,
	/* 5 */ rel, izy, izp, imp, zpx, zpx, zpx, zpg, imp, aby, imp, imp, abx, abx, abx, rlb,
	/* 6 */ imp, izx, imm, imp, zpg, zpg, zpg, zpg, imp, imm, acc, imp, ind, abs, abs, rlb,
	/* 7 */ rel, izy, izp, imp, zpx, zpx, zpx, zpg, imp, aby, imp, imp, iax, abx, abx, rlb,
	/* 8 */ rel, izx, imm, imp, zpg, zpg, zpg, zpg, imp, imm, imp, imp, abs, abs, abs, rlb,
	/* 9 */ rel, izy, izp, imp, zpx, zpx, zpy, zpg, imp, aby, imp, imp, abs, abx, abx, rlb,
	/* A */ imm, izx, imm, imp, zpg, zpg, zpg, zpg, imp, imm, imp, imp, abs, abs, abs, rlb,
	/* B */ rel, izy, izp, imp, zpx, zpx, zpy, zpg, imp, aby, imp, imp, abx, abx, aby, rlb,
	/* C */ imm, izx, imm, imp, zpg, zpg, zpg, zpg, imp, imm, imp, imp, abs, abs, abs, rlb,
	/* D */ rel, izy, izp, imp, zpx, zpx, zpx, zpg, imp, aby, imp, imp, abx, abx, abx, rlb,
	/* E */ imm, izx, imm, imp, zpg, zpg, zpg, zpg, imp, imm, imp, imp, abs, abs, abs, rlb,
	/* F */ rel, izy, izp, imp, zpx, zpx, zpx, zpg, imp, aby, imp, imp, abx, abx, abx, rlb,
}

var nmosOps = [256]operation{
	/*      0      1      2      3      4      5      6      7      8      9      A      B      C      D      E      F */
	/* 0 */ opBRK, opORA, opNOP, opSLO, opNOP, opORA, opASL, opSLO, opPHP, opORA, opASL, opNOP, opNOP, opORA, opASL, opSLO,
	/* 1 */ opBPL, opORA, opNOP, opSLO, opNOP, opORA, opASL, opSLO, opCLC, opORA, opNOP, opSLO, opNOP, opORA, opASL, opSLO,
	/* 2 */ opJSR, opAND, opNOP, opRLA, opBIT, opAND, opROL, opRLA, opPLP, opAND, opROL, opNOP, opBIT, opAND, opROL, opRLA,
	/* 3 */ opBMI, opAND, opNOP, opRLA, opNOP, opAND, opROL, opRLA, opSEC, opAND, opNOP, opRLA, opNOP, opAND, opROL, opRLA,
	/* 4 */ opRTI, opEOR, opNOP, opSRE, opNOP, opEOR, opLSR, opSRE, opPHA, opEOR, opLSR, opNOP, opJMP, opEOR, opLSR, opSRE,
	/* 5 */ opBVC, opEOR, opNOP, opSRE, opNOP, opEOR, opLSR, opSRE, opCLI, opEOR, opNOP, opSRE, opNOP, opEOR, opLSR, opSRE,
	/* 6 */ opRTS, opADC, opNOP, opRRA, opNOP, opADC, opROR, opRRA, opPLA, opADC, opROR, opNOP, opJMP, opADC, opROR, opRRA,
	/* 7 */ opBVS, opADC, opNOP, opRRA, opNOP, opADC, opROR, opRRA, opSEI, opADC, opNOP, opRRA, opNOP, opADC, opROR, opRRA,
	/* 8 */ opNOP, opSTA, opNOP, opSAX, opSTY, opSTA, opSTX, opSAX, opDEY, opNOP, opTXA, opNOP, opSTY, opSTA, opSTX, opSAX,
	/* 9 */ opBCC, opSTA, opNOP, opNOP, opSTY, opSTA, opSTX, opSAX, opTYA, opSTA, opTXS, opNOP, opNOP, opSTA, opNOP, opNOP,
	/* A */ opLDY, opLDA, opLDX, opLAX, opLDY, opLDA, opLDX, opLAX, opTAY, opLDA, opTAX, opNOP, opLDY, opLDA, opLDX, opLAX,
	/* B */ opBCS, opLDA, opNOP, opLAX, opLDY, opLDA, opLDX, opLAX, opCLV, opLDA, opTSX, opNOP, opLDY, opLDA, opLDX, opLAX,
	/* C */ opCPY, opCMP, opNOP, opDCP, opCPY, opCMP, opDEC, opDCP, opINY, opCMP, opDEX, opNOP, opCPY, opCMP, opDEC, opDCP,
	/* D */ opBNE, opCMP, opNOP, opDCP, opNOP, opCMP, opDEC, opDCP, opCLD, opCMP, opNOP, opDCP, opNOP, opCMP, opDEC, opDCP,
	/* E */ opCPX, opSBC, opNOP, opISB, opCPX, opSBC, opINC, opISB, opINX, opSBC, opNOP, opSBC, opCPX, opSBC, opINC, opISB,
	/* F */ opBEQ, opSBC, opNOP, opISB, opNOP, opSBC, opINC, opISB, opSED, opSBC, opNOP, opISB, opNOP, opSBC, opINC, opISB,
}

var cmosOps = [256]operation{
	/*      0      1      2      3      4      5      6      7      8      9      A      B      C      D      E      F */
	/* 0 */ opBRK, opORA, opNOP, opNOP, opTSB, opORA, opASL, opRMB, opPHP, opORA, opASL, opNOP, opTSB, opORA, opASL, opBBR,
	/* 1 */ opBPL, opORA, opORA, opNOP, opTRB, opORA, opASL, opRMB, opCLC, opORA, opINC, opNOP, opTRB, opORA, opASL, opBBR,
	/* 2 */ opJSR, opAND, opNOP, opNOP, opBIT, opAND, opROL, opRMB, opPLP, opAND, opROL, opNOP, opBIT, opAND, opROL, opBBR,
	/* 3 */ opBMI, opAND, opAND, opNOP, opBIT, opAND, opROL, opRMB, opSEC, opAND, opDEC, opNOP, opBIT, opAND, opROL, opBBR,
	/* 4 */ opRTI, opEOR, opNOP, opNOP, opNOP, opEOR, opLSR, opRMB, opPHA, opEOR, opLSR, opNOP, opJMP, opEOR, opLSR, opBBR,
	/* 5 */ opBVC, opEOR, opEOR, opNOP, opNOP, opEOR, opLSR, opRMB, opCLI, opEOR, opPHY, opNOP, opNOP, opEOR, opLSR, opBBR,
	/* 6 */ opRTS, opADC, opNOP, opNOP, opSTZ, opADC, opROR, opRMB, opPLA, opADC, opROR, opNOP, opJMP, opADC, opROR, opBBR,
	/* 7 */ opBVS, opADC, opADC, opNOP, opSTZ, opADC, opROR, opRMB, opSEI, opADC, opPLY, opNOP, opJMP, opADC, opROR, opBBR,
	/* 8 */ opBRA, opSTA, opNOP, opNOP, opSTY, opSTA, opSTX, opSMB, opDEY, opBIT, opTXA, opNOP, opSTY, opSTA, opSTX, opBBS,
	/* 9 */ opBCC, opSTA, opSTA, opNOP, opSTY, opSTA, opSTX, opSMB, opTYA, opSTA, opTXS, opNOP, opSTZ, opSTA, opSTZ, opBBS,
	/* A */ opLDY, opLDA, opLDX, opNOP, opLDY, opLDA, opLDX, opSMB, opTAY, opLDA, opTAX, opNOP, opLDY, opLDA, opLDX, opBBS,
	/* B */ opBCS, opLDA, opLDA, opNOP, opLDY, opLDA, opLDX, opSMB, opCLV, opLDA, opTSX, opNOP, opLDY, opLDA, opLDX, opBBS,
	/* C */ opCPY, opCMP, opNOP, opNOP, opCPY, opCMP, opDEC, opSMB, opINY, opCMP, opDEX, opNOP, opCPY, opCMP, opDEC, opBBS,
	/* D */ opBNE, opCMP, opCMP, opNOP, opNOP, opCMP, opDEC, opSMB, opCLD, opCMP, opPHX, opNOP, opNOP, opCMP, opDEC, opBBS,
	/* E */ opCPX, opSBC, opNOP, opNOP, opCPX, opSBC, opINC, opSMB, opINX, opSBC, opNOP, opNOP, opCPX, opSBC, opINC, opBBS,
	/* F */ opBEQ, opSBC, opSBC, opNOP, opNOP, opSBC, opINC, opSMB, opSED, opSBC, opPLX, opNOP, opNOP, opSBC, opINC, opBBS,
}

// base cycles, shared by both maps; buildTable patches the few that differ
var ticks = [256]byte{
	/*      0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F */
	/* 0 */ 7, 6, 2, 8, 5, 3, 5, 5, 3, 2, 2, 2, 6, 4, 6, 6,
	/* 1 */ 2, 5, 5, 8, 5, 4, 6, 6, 2, 4, 2, 7, 6, 4, 7, 7,
	/* 2 */ 6, 6, 2, 8, 3, 3, 5, 5, 4, 2, 2, 2, 4, 4, 6, 6,
	/* 3 */ 2, 5, 5, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	/* 4 */ 6, 6, 2, 8, 3, 3, 5, 5, 3, 2, 2, 2, 3, 4, 6, 6,
	/* 5 */ 2, 5, 5, 8, 4, 4, 6, 6, 2, 4, 3, 7, 4, 4, 7, 7,
	/* 6 */ 6, 6, 2, 8, 3, 3, 5, 5, 4, 2, 2, 2, 5, 4, 6, 6,
	/* 7 */ 2, 5, 5, 8, 4, 4, 6, 6, 2, 4, 3, 7, 6, 4, 7, 7,
	/* 8 */ 2, 6, 2, 6, 3, 3, 3, 3, 2, 2, 2, 2, 4, 4, 4, 4,
	/* 9 */ 2, 6, 5, 6, 4, 4, 4, 4, 2, 5, 2, 5, 4, 5, 5, 5,
	/* A */ 2, 6, 2, 6, 3, 3, 3, 3, 2, 2, 2, 2, 4, 4, 4, 4,
	/* B */ 2, 5, 5, 5, 4, 4, 4, 4, 2, 4, 2, 4, 4, 4, 4, 4,
	/* C */ 2, 6, 2, 8, 3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6,
	/* D */ 2, 5, 5, 8, 4, 4, 6, 6, 2, 4, 3, 7, 4, 4, 7, 7,
	/* E */ 2, 6, 2, 8, 3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6,
	/* F */ 2, 5, 5, 8, 4, 4, 6, 6, 2, 4, 3, 7, 4, 4, 7, 7,
}
