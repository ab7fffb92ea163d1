package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/valyala/bytebufferpool"

	"github.com/uniyakcom/jot"
)

var kindColors = map[jot.Kind]*color.Color{
	jot.KindNull:   color.New(color.Faint),
	jot.KindBool:   color.New(color.FgYellow),
	jot.KindNumber: color.New(color.FgGreen),
	jot.KindString: color.New(color.FgCyan),
	jot.KindObject: color.New(color.FgMagenta),
	jot.KindArray:  color.New(color.FgBlue),
}

// printTree 按深度优先打印整个 token 层级
func printTree(p *jot.Parser) {
	scratch := bytebufferpool.Get()
	defer bytebufferpool.Put(scratch)
	printSubtree(p, 1, 1, scratch)
}

func printSubtree(p *jot.Parser, i jot.Idx, depth int, scratch *bytebufferpool.ByteBuffer) {
	t := p.At(i)
	indent := strings.Repeat("  ", depth)

	// 成员名按父容器类型判断（空键名的长度也是 0，不能只看 NameLen）
	label := ""
	if p.At(t.Parent).Kind == jot.KindObject {
		scratch.Reset()
		name, ok := p.TokenName(i, scratch)
		if ok {
			label = fmt.Sprintf("%q: ", name)
		} else {
			label = fmt.Sprintf("%q (bad escape): ", name)
		}
	}

	c := kindColors[t.Kind]
	switch t.Kind {
	case jot.KindObject, jot.KindArray:
		fmt.Printf("%s%s%s (%d)\n", indent, label, c.Sprint(t.Kind.String()), t.Children)
		p.EachChild(i, func(child jot.Idx) bool {
			printSubtree(p, child, depth+1, scratch)
			return true
		})
	case jot.KindString:
		scratch.Reset()
		val, ok := p.TokenString(i, scratch)
		if ok {
			fmt.Printf("%s%s%s\n", indent, label, c.Sprintf("%q", val))
		} else {
			fmt.Printf("%s%s%s (bad escape)\n", indent, label, c.Sprintf("%q", val))
		}
	default:
		scratch.Reset()
		val, _ := p.TokenString(i, scratch)
		fmt.Printf("%s%s%s\n", indent, label, c.Sprint(string(val)))
	}
}
