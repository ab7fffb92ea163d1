package tok

// ResizeFunc token 数组扩容策略
//
// 初始化时传入，token 耗尽时由 Store 回调:
//
//   - sizeHint == 0: 释放策略持有的全部存储，必须成功返回 true。
//   - sizeHint > 0: 扩容到至少 sizeHint 个槽位。策略可以分配任意
//     不小于 sizeHint 的容量，但新容量必须 >= max(旧容量+1, 2)
//     （哨兵占用下标 0，至少还要容纳一个真实 token）。
//
// 策略必须保留既有内容并通过 SetTokens 更新 Store 的底层数组。
// 旧数组可能是策略此前分配的，也可能是调用方提供的固定数组——
// 调用方数组绝不释放，替换引用即可。
type ResizeFunc func(s *Store, sizeHint uint32) bool

// Grow 默认扩容策略: 容量按 2 的幂翻倍
//
// 倍增策略保证整个解析过程至多 log(n) 次扩容。
func Grow(s *Store, sizeHint uint32) bool {
	if sizeHint == 0 {
		s.SetTokens(nil)
		return true
	}
	nt := make([]Token, sizeHint)
	copy(nt, s.Tokens())
	s.SetTokens(nt)
	return true
}

// Store token 存储
//
// 从 1 开始编号的连续 token 数组。下标 0 是全零哨兵（见 IdxNone）。
// last 为最近分配 token 的下标，last == 0 表示尚未分配任何 token。
//
// 三种初始化形态:
//
//	s.Init(0, tokens, nil)    // 固定数组，耗尽即失败（有界解析）
//	s.Init(0, nil, tok.Grow)  // 全动态，按需倍增
//	s.Init(0, tokens, fn)     // 先用固定数组，耗尽后回退到策略
//
// hint > 0 时首次动态分配至少 hint 个槽位。
type Store struct {
	toks []Token
	last Idx

	hint     uint32
	initToks []Token
	resize   ResizeFunc
}

// Init 初始化存储
//
// tokens 为调用方提供的初始数组（可为 nil），resize 为扩容策略
// （可为 nil），hint 为首次动态分配的建议容量。重复调用会丢弃
// 之前的状态但不释放调用方数组。
func (s *Store) Init(hint uint32, tokens []Token, resize ResizeFunc) {
	*s = Store{hint: hint, initToks: tokens, resize: resize}
}

// Reset 回收全部 token 复用底层数组（不释放存储）
func (s *Store) Reset() {
	s.last = 0
	if len(s.toks) > 0 {
		s.toks[0] = Token{}
	}
}

// Free 释放扩容策略持有的存储
//
// 策略收到 sizeHint == 0。调用方提供的初始数组不受影响，
// Free 之后 Store 可继续使用（下次分配重新建立数组）。
func (s *Store) Free() {
	if s.resize != nil {
		s.resize(s, 0)
	}
	s.toks = nil
}

// Alloc 分配下一个 token
//
// last 递增后槽位清零，parent 写入 token 并为父 token 的 Children
// 计数 +1。容量不足时依次尝试: 调用方初始数组 → 扩容策略。
// 失败返回 false，此时 last >= Cap()（已有数组时二者相等；一个数组
// 都未能建立时 Cap() 为 0），即容量耗尽的判别信号（与语法错误区分，
// 见 Parser.Exhausted）。
func (s *Store) Alloc(parent Idx) bool {
	s.last++

	if int(s.last) >= len(s.toks) {
		if s.toks == nil {
			// 首次分配: 优先采用调用方数组，不够则走策略
			if s.initToks != nil && int(s.last) < len(s.initToks) {
				s.toks = s.initToks
			} else if s.resize == nil ||
				!s.resize(s, max32(s.last+1, s.hint)) ||
				int(s.last) >= len(s.toks) {
				return false
			}
			s.toks[0] = Token{}
		} else if s.resize == nil ||
			!s.resize(s, nextPow2(uint32(len(s.toks)))) ||
			int(s.last) >= len(s.toks) {
			return false
		}
	}

	// 扩容会搬移数组，这里必须重新下标寻址，不能沿用旧指针
	s.toks[s.last] = Token{Parent: parent}
	s.toks[parent].Children++

	return true
}

// At 返回下标 i 的 token 视图
//
// 视图不得跨越可能触发分配的调用保留——扩容后指针失效。
func (s *Store) At(i Idx) *Token { return &s.toks[i] }

// Last 最近分配 token 的下标（解析成功后即 token 总数）
func (s *Store) Last() Idx { return s.last }

// Cap 当前容量（含哨兵槽位）
func (s *Store) Cap() uint32 { return uint32(len(s.toks)) }

// Tokens 返回底层数组（扩容策略用）
func (s *Store) Tokens() []Token { return s.toks }

// SetTokens 替换底层数组（扩容策略用）
func (s *Store) SetTokens(toks []Token) { s.toks = toks }

// nextPow2 返回严格大于 n 且不小于 2 的最小 2 的幂
func nextPow2(n uint32) uint32 {
	p := uint32(2)
	for p <= n {
		p <<= 1
	}
	return p
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
