// Package xconf 加载 ethermaker 的可选配置文件，基于 koanf 实现。
//
// 支持 YAML（.yaml, .yml）和 JSON（.json），格式由扩展名决定；
// [NewFromBytes] 需要显式指定格式。
//
// Unmarshal 使用 mapstructure 解码，允许弱类型转换（例如字符串 "8"
// 可转为 int）。配置中缺失的键不会覆盖 target 已有的值，调用方可以
// 先写入内置默认值再解码：
//
//	cfg := defaultConfig()
//	c, err := xconf.New(path, xconf.WithStrict())
//	if err != nil {
//		return err
//	}
//	err = c.Unmarshal("", &cfg)
//
// [WithStrict] 让未知键成为错误。
package xconf
