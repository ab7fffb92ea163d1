package tok

// 导航原语建立在 ascend 写回的 Next 指针之上: 容器 token 记录了
// 跳过整棵子树后的落点，任意子树都能 O(1) 越过。

// First 返回 i 的第一个子成员下标
//
// 无子成员时（叶子，或空容器）返回的是紧随其后的 token 下标，
// 可能不存在；调用方用 Next(i) 作为迭代终点即可天然避开。
func (p *Parser) First(i Idx) Idx { return i + 1 }

// Next 返回 i 之后第一个不属于其子树的 token 下标
//
// 这是通用的"跳过整棵子树"操作: 容器直接取 Next 指针，叶子即
// 下一个 token。
func (p *Parser) Next(i Idx) Idx {
	t := p.st.At(i)
	if t.Kind == KindObject || t.Kind == KindArray {
		return t.Next
	}
	return i + 1
}

// EachChild 遍历容器的直接子成员，fn 返回 false 停止
//
// 迭代习惯用法的封装:
//
//	end := p.Next(c)
//	for i := p.First(c); i != end; i = p.Next(i) { ... }
func (p *Parser) EachChild(c Idx, fn func(i Idx) bool) {
	end := p.Next(c)
	for i := p.First(c); i != end; i = p.Next(i) {
		if !fn(i) {
			return
		}
	}
}
