package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenSessionID 测验会话 ID，跨请求唯一
func GenSessionID() string {
	return "quiz_" + node.Generate().String()
}

func GenID() int64 {
	return node.Generate().Int64()
}
