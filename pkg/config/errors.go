package config

import "errors"

// 启动阶段的错误类型，调用方使用 errors.Is 判断
var (
	// ErrUnknownRecord 配置文件中出现无法识别的记录类型
	ErrUnknownRecord = errors.New("unknown config record")
	// ErrFontUnreadable 字体文件无法读取或解析
	ErrFontUnreadable = errors.New("font unreadable")
	// ErrMalformedRecord 记录字段缺失或不是数字
	ErrMalformedRecord = errors.New("malformed config record")
	// ErrInvalidConfig 字段值超出合理范围
	ErrInvalidConfig = errors.New("invalid config")
)

// 进程退出码，每种致命错误一个
const (
	ExitOK             = 0
	ExitFontUnreadable = 1
	ExitUnknownRecord  = 2
	ExitStartupFailure = 3
)

// ExitCode 将启动错误映射为进程退出码
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrFontUnreadable):
		return ExitFontUnreadable
	case errors.Is(err, ErrUnknownRecord):
		return ExitUnknownRecord
	default:
		return ExitStartupFailure
	}
}
