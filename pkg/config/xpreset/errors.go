package xpreset

import "errors"

var (
	// ErrEmptyPath 表示配置文件路径为空。
	ErrEmptyPath = errors.New("xpreset: empty config path")

	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xpreset: unsupported config format")

	// ErrLoadFailed 表示配置文件读取失败。
	ErrLoadFailed = errors.New("xpreset: failed to load config")

	// ErrParseFailed 表示配置内容解析失败。
	ErrParseFailed = errors.New("xpreset: failed to parse config")

	// ErrInvalidPreset 表示预设声明不合法（空、多种写法并存或
	// 桶参数未通过校验）。
	ErrInvalidPreset = errors.New("xpreset: invalid preset")

	// ErrUnknownPreset 表示查询的预设名不存在。
	ErrUnknownPreset = errors.New("xpreset: unknown preset")
)
