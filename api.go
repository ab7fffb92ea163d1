// Package jot 统一 API 入口
//
// jot 是一个严格校验的零拷贝 JSON 词法解析库: 一遍扫描把输入
// token 化为连续数组，字符串/数字以区间形式指向原始输入，含转义
// 的字符串按需解码。核心实现在 tok 子包，批量并行校验在 batch
// 子包。
package jot

import (
	"github.com/valyala/bytebufferpool"

	"github.com/uniyakcom/jot/tok"
	"github.com/uniyakcom/jot/util"
)

// Parser 导出 Parser 类型
type Parser = tok.Parser

// Token 导出 Token 类型
type Token = tok.Token

// Kind 导出 Kind 类型
type Kind = tok.Kind

// Idx 导出 token 下标类型
type Idx = tok.Idx

// ResizeFunc 导出扩容策略类型
type ResizeFunc = tok.ResizeFunc

// Kind 常量导出
const (
	KindNone   = tok.KindNone
	KindNull   = tok.KindNull
	KindBool   = tok.KindBool
	KindNumber = tok.KindNumber
	KindString = tok.KindString
	KindObject = tok.KindObject
	KindArray  = tok.KindArray

	IdxNone = tok.IdxNone
)

// ═══════════════════════════════════════════════════════════════════
// 第零层：New() 零配置入口
// ═══════════════════════════════════════════════════════════════════

// New 零配置创建 Parser（全动态存储，按需倍增）
//
// 用法:
//
//	p := jot.New()
//	if err := p.Parse(data); err != nil { ... }
func New() *Parser {
	return tok.NewParser()
}

// ═══════════════════════════════════════════════════════════════════
// 第一层：ForXxx() 三种存储形态
// ═══════════════════════════════════════════════════════════════════

// ForFixed 固定容量 Parser（有界解析）
//
// 用途: 不受信输入、嵌入式场景，token 超过 n-1 个即失败
// （槽位 0 被哨兵占用）。失败后 Exhausted() 为 true。
func ForFixed(n int) *Parser {
	p := &tok.Parser{}
	p.Init(0, make([]Token, n), nil)
	return p
}

// ForPrealloc 预分配容量 Parser（减少扩容次数）
//
// 用途: 已知输入规模的热路径，首次分配 n 个槽位，耗尽后倍增。
func ForPrealloc(n int) *Parser {
	p := &tok.Parser{}
	p.Init(uint32(n), nil, tok.Grow)
	return p
}

// ForBuffer 完全控制存储形态
//
// tokens 为调用方提供的初始数组（绝不被释放），resize 为自定义
// 扩容策略；两者都可为 nil，语义见 tok.Store.Init。
func ForBuffer(tokens []Token, resize ResizeFunc) *Parser {
	p := &tok.Parser{}
	p.Init(0, tokens, resize)
	return p
}

// ═══════════════════════════════════════════════════════════════════
// 第二层：便捷函数
// ═══════════════════════════════════════════════════════════════════

// Valid 报告 data 是否为合法 JSON（池化 Parser，并发安全）
func Valid(data []byte) bool {
	p := tok.AcquireParser()
	err := p.Parse(data)
	tok.ReleaseParser(p)
	return err == nil
}

// ValidString 报告 s 是否为合法 JSON（零拷贝包装）
func ValidString(s string) bool {
	return Valid(util.S2B(s))
}

// StringValue 物化 token 的字符串值
//
// 解转义 scratch 取自内部 buffer 池，返回值是独立拷贝。
// 第二个返回值为 false 表示值含非法转义（如不配对的代理）。
func StringValue(p *Parser, i Idx) (string, bool) {
	b := bytebufferpool.Get()
	v, ok := p.TokenString(i, b)
	s := string(v)
	bytebufferpool.Put(b)
	return s, ok
}

// NameOf 物化 token 的成员名（非对象成员返回空串）
func NameOf(p *Parser, i Idx) (string, bool) {
	b := bytebufferpool.Get()
	v, ok := p.TokenName(i, b)
	s := string(v)
	bytebufferpool.Put(b)
	return s, ok
}
