package xdesc

// BuildFQName 用 "_" 连接 namespace、subsystem 和 name 三个名称分量，
// 空分量被忽略。name 本身为空时无条件返回空字符串。
func BuildFQName(namespace, subsystem, name string) string {
	if name == "" {
		return ""
	}
	switch {
	case namespace != "" && subsystem != "":
		return namespace + "_" + subsystem + "_" + name
	case namespace != "":
		return namespace + "_" + name
	case subsystem != "":
		return subsystem + "_" + name
	}
	return name
}
