package tok

import "sync"

// ─── ParserPool（并发安全） ───

// ParserPool 并发安全的 Parser 池
var ParserPool = sync.Pool{
	New: func() any { return NewParser() },
}

// AcquireParser 从池中获取 Parser
func AcquireParser() *Parser {
	return ParserPool.Get().(*Parser)
}

// ReleaseParser 归还 Parser 到池中
//
// 归还后之前解析结果的 token 视图全部失效。
func ReleaseParser(p *Parser) {
	ParserPool.Put(p)
}
