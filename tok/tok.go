// Package tok 严格校验的零拷贝 JSON 词法解析器
//
// 设计原则（综合 fastjson、gjson、jsonparser 最佳实践）:
//   - 单遍解析: 输入字节流一次扫描，同时完成校验与 token 化
//   - 零拷贝: 所有字符串/数字以 (偏移, 长度) 形式指向原始输入，解析期不分配
//   - 索引寻址: token 之间用数组下标互相引用，扩容不会使引用失效
//   - 延迟解转义: 含转义的字符串仅打标记，消费时按需解码到调用方 buffer
//   - 非递归: 容器闭合用 ascend 循环处理，嵌套深度不受调用栈限制
//
// 致谢 (Acknowledgments):
//
//	本包的部分优化技巧受以下优秀开源项目启发：
//	- valyala/fastjson (MIT License): 解析器复用 + sync.Pool 池化模式
//	- tidwall/gjson (MIT License): > '\' 字符范围比较技巧、8 字节批量扫描
//	- buger/jsonparser (MIT License): 延迟取值、按需解转义的两阶段字符串策略
//	核心为独立实现：哨兵式 token 数组、可插拔扩容策略、ascend 层级回链。
//
// 用法:
//
//	p := tok.NewParser()
//	if err := p.Parse(data); err != nil {
//	    // 语法错误或 token 耗尽，p.Remainder() 指向出错位置
//	}
//	for i := tok.Idx(1); i <= p.Last(); i++ {
//	    t := p.At(i)
//	    // 按深度优先顺序处理 t
//	}
package tok

// Kind JSON token 类型
//
// token 分配时为 KindNone，类型确定后写入实际类型。
type Kind uint8

const (
	KindNone   Kind = iota // 未确定（仅出现在失败解析的末 token）
	KindNull               // null
	KindBool               // true / false
	KindNumber             // 数字（保留原始字面量）
	KindString             // 字符串
	KindObject             // 对象
	KindArray              // 数组
)

// String 返回类型名称
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "none"
	}
}

// Idx token 数组下标
//
// 用下标而非指针引用 token：扩容会搬移底层数组，指针失效而下标不失效。
type Idx = uint32

// IdxNone 保留下标 0
//
// 下标 0 的槽位不存放真实 token，是一个全零哨兵，充当根 token 的
// parent 以及 parent 链上溯的终点。
const IdxNone Idx = 0

// MaxInput 单次解析的最大输入字节数
//
// 偏移字段为 uint32，超过该上限的输入直接拒绝，杜绝静默截断。
const MaxInput = 1<<32 - 1

// Token 一个 JSON 值的定长记录
//
// token 可能只有值，也可能同时携带名字（作为对象成员时）。
// 无名字时 NameOff 与 NameLen 均为 0。
//
// NameOff/NameLen 与 StrOff/StrLen 都是指向原始输入的字节区间，
// 字符串不含两侧引号，数字含符号位。载荷按 Kind 取用:
//
//   - KindNull: 无载荷
//   - KindBool: Boolean
//   - KindNumber / KindString: StrOff + StrLen
//   - KindObject / KindArray: Children（直接子成员数）+ Next（闭合
//     括号之后紧邻 token 的下标）
//
// NameEsc / ValueEsc 标记名字/字符串值中是否出现过 '\' 转义。
// 未转义时可直接使用输入切片，否则经 Parser.TokenName /
// Parser.TokenString 按需解转义。
type Token struct {
	NameOff  uint32 // 名字在输入中的偏移
	NameLen  uint32 // 名字长度
	StrOff   uint32 // 字符串/数字字面量偏移
	StrLen   uint32 // 字符串/数字字面量长度
	Children uint32 // 对象/数组的直接子成员数
	Next     Idx    // 对象/数组内容之后的 token 下标
	Parent   Idx    // 父 token 下标（根 token 为 IdxNone）
	Kind     Kind   // token 类型
	Boolean  bool   // KindBool 的值
	NameEsc  bool   // 名字是否含转义字符
	ValueEsc bool   // 字符串值是否含转义字符
}

// ─── 错误常量 ───

type tokError string

func (e tokError) Error() string { return string(e) }

const (
	// ErrNoTokens token 存储耗尽（无扩容策略，或扩容被拒绝）
	ErrNoTokens tokError = "tok: token store exhausted"

	// ErrInputTooLarge 输入超出 uint32 偏移可表示范围
	ErrInputTooLarge tokError = "tok: input exceeds offset range"
)
