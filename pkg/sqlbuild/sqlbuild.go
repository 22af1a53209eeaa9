// Package sqlbuild 把 SQL 片段和它的绑定参数捆在一起拼接，
// 避免条件列表和参数列表分开维护时的错位问题。
package sqlbuild

import "strings"

type cond struct {
	frag string
	args []interface{}
}

type Builder struct {
	conds []cond
}

// Add 追加一个条件片段及其参数
func (b *Builder) Add(frag string, args ...interface{}) {
	b.conds = append(b.conds, cond{frag: frag, args: args})
}

func (b *Builder) Empty() bool {
	return len(b.conds) == 0
}

func (b *Builder) Len() int {
	return len(b.conds)
}

// JoinOr 用 OR 连接所有条件，返回整体片段和按序展开的参数
func (b *Builder) JoinOr() (string, []interface{}) {
	return b.join(" OR ")
}

// JoinAnd 用 AND 连接所有条件
func (b *Builder) JoinAnd() (string, []interface{}) {
	return b.join(" AND ")
}

func (b *Builder) join(sep string) (string, []interface{}) {
	if len(b.conds) == 0 {
		return "", nil
	}
	frags := make([]string, 0, len(b.conds))
	args := make([]interface{}, 0, len(b.conds))
	for _, c := range b.conds {
		frags = append(frags, c.frag)
		args = append(args, c.args...)
	}
	return "(" + strings.Join(frags, sep) + ")", args
}
