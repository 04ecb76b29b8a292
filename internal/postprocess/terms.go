package postprocess

// DefaultTerms is the built-in terminology correction table for CJK
// output. Keys are literal decoded substrings the models are known to
// produce for mechanical-engineering vocabulary; values are the accepted
// terms. User glossary entries are merged on top at construction.
var DefaultTerms = map[string]string{
	"变量位移活塞":  "变量柱塞泵",
	"可变位移活塞":  "变量柱塞泵",
	"可变位移活塞泵": "变量柱塞泵",
	"变量位移活塞泵": "变量柱塞泵",
	"反响":         "齿隙",
	"侧隙":         "齿隙",
	"表面修饰":     "表面粗糙度",
	"表面光洁度":   "表面粗糙度",
	"tolerances":   "公差",
}
