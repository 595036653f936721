package assembler_test

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Urethramancer/asm65/assembler"
	"github.com/Urethramancer/asm65/cpu"
)

// operandShape is one way of writing an operand, with what it should decode to.
type operandShape struct {
	text string
	want assembler.Operand
}

var operandShapes = []operandShape{
	{"", assembler.Operand{Mode: cpu.ModeImplicit}},
	{"A", assembler.Operand{Mode: cpu.ModeAccumulator}},
	{"#$7f", assembler.Operand{Mode: cpu.ModeImmediate, Expr: "$7f"}},
	{"$1234", assembler.Operand{Mode: cpu.ModeDirect, Expr: "$1234"}},
	{"$80,x", assembler.Operand{Mode: cpu.ModeIndexedX, Expr: "$80"}},
	{"$80,Y", assembler.Operand{Mode: cpu.ModeIndexedY, Expr: "$80"}},
	{"(ptr,X)", assembler.Operand{Mode: cpu.ModeIndirectX, Expr: "ptr"}},
	{"(ptr),y", assembler.Operand{Mode: cpu.ModeIndirectY, Expr: "ptr"}},
	{"(vec)", assembler.Operand{Mode: cpu.ModeIndirect, Expr: "vec"}},
}

var _ = Describe("Decode", func() {
	It("should cover every addressing mode exactly once", func() {
		seen := map[cpu.Mode]string{}
		for _, sh := range operandShapes {
			Expect(seen).NotTo(HaveKey(sh.want.Mode))
			seen[sh.want.Mode] = sh.text
		}
		Expect(seen).To(HaveLen(len(cpu.Modes())))
	})

	It("should decode every mnemonic with every operand shape", func() {
		for _, mn := range cpu.Mnemonics() {
			for _, sh := range operandShapes {
				for _, name := range []string{mn.String(), strings.ToLower(mn.String())} {
					src := name
					if sh.text != "" {
						src += " " + sh.text
					}

					ins, err := assembler.Decode(src)
					Expect(err).NotTo(HaveOccurred(), src)
					Expect(ins.Mnemonic).To(Equal(mn), src)
					Expect(ins.Operand).To(Equal(sh.want), src)
				}
			}
		}
	})

	DescribeTable("unknown mnemonics",
		func(src string) {
			_, err := assembler.Decode(src)
			Expect(err).To(MatchError(assembler.ErrUnknownMnemonic))
		},
		Entry("unknown name", "xyz"),
		Entry("too short", "lx"),
		Entry("empty", ""),
		Entry("directive", ".byte 1"),
		Entry("65C02 extension", "stz $10"),
	)
})

var _ = Describe("Assembler", func() {
	var asm *assembler.Assembler

	BeforeEach(func() {
		asm = assembler.New(assembler.WithWorkers(3))
	})

	It("should keep source order when parsing in parallel", func() {
		lines := make([]string, 0, 200)
		for i := 0; i < 200; i++ {
			lines = append(lines, "x"+strings.Repeat("y", i%7)+": nop")
		}

		nodes, err := asm.ParseLines(context.Background(), lines)
		Expect(err).NotTo(HaveOccurred())
		Expect(nodes).To(HaveLen(len(lines)))
		for i, n := range nodes {
			Expect(n.LineNo).To(Equal(i + 1))
			Expect(n.Source).To(Equal(lines[i]))
			Expect(n.Type).To(Equal(assembler.NodeInstruction))
		}
	})

	It("should report unknown lines without failing the batch", func() {
		nodes, err := asm.ParseLines(context.Background(), []string{"lda #1", "bogus", "rts"})
		Expect(err).NotTo(HaveOccurred())
		Expect(nodes[1].Type).To(Equal(assembler.NodeUnknown))
		Expect(nodes[1].Err).To(MatchError(assembler.ErrUnknownMnemonic))
		Expect(nodes[2].Instruction.Mnemonic).To(Equal(cpu.RTS))
	})
})
