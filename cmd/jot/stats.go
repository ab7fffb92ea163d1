package main

import (
	"fmt"

	"github.com/uniyakcom/jot"
)

// kindStats 单一 token 类型的统计量
//
// size 对容器是直接子成员数，对字符串/数字是字面量字节数。
type kindStats struct {
	count    uint64
	size     uint64
	minSize  uint64
	maxSize  uint64
	named    uint64
	nameSize uint64
	nameMin  uint64
	nameMax  uint64
	nameEsc  uint64
	valueEsc uint64
}

var statKinds = [...]jot.Kind{
	jot.KindNull, jot.KindBool, jot.KindNumber,
	jot.KindString, jot.KindObject, jot.KindArray,
}

// printStats 汇总并打印各类型 token 的统计表
func printStats(p *jot.Parser) {
	var stats [jot.KindArray + 1]kindStats

	for i := jot.Idx(1); i <= p.Last(); i++ {
		t := p.At(i)
		s := &stats[t.Kind]
		s.count++

		var sz uint64
		switch t.Kind {
		case jot.KindObject, jot.KindArray:
			sz = uint64(t.Children)
		case jot.KindString, jot.KindNumber:
			sz = uint64(t.StrLen)
		}
		s.size += sz
		s.minSize = statMin(s.minSize, sz, s.count)
		if sz > s.maxSize {
			s.maxSize = sz
		}

		if p.At(t.Parent).Kind == jot.KindObject {
			s.named++
			nl := uint64(t.NameLen)
			s.nameSize += nl
			s.nameMin = statMin(s.nameMin, nl, s.named)
			if nl > s.nameMax {
				s.nameMax = nl
			}
			if t.NameEsc {
				s.nameEsc++
			}
		}
		if t.ValueEsc {
			s.valueEsc++
		}
	}

	fmt.Printf("%-8s %8s %22s %8s %22s %6s\n",
		"kind", "count", "size min/mean/max", "named", "name min/mean/max", "esc")
	for _, k := range statKinds {
		s := &stats[k]
		if s.count == 0 {
			continue
		}
		fmt.Printf("%-8s %8d %8d/%6d/%6d %8d %8d/%6d/%6d %6d\n",
			k, s.count,
			s.minSize, statMean(s.size, s.count), s.maxSize,
			s.named,
			s.nameMin, statMean(s.nameSize, s.named), s.nameMax,
			s.nameEsc+s.valueEsc)
	}
}

// statMin 首个样本直接采纳，其后取较小值
func statMin(current, sz, count uint64) uint64 {
	if count == 1 || sz < current {
		return sz
	}
	return current
}

// statMean 四舍五入的平均值
func statMean(total, count uint64) uint64 {
	if count == 0 {
		return 0
	}
	return (total + count/2) / count
}
