package fonts

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// 内置的回退字体：当宿主机缺少首选字体文件时，所有字体角色都使用 Go 字体族。
const (
	Regular = "Go-Regular.ttf"
	Bold    = "Go-Bold.ttf"
)

var builtin = map[string][]byte{
	Regular: goregular.TTF,
	Bold:    gobold.TTF,
}

// Load 返回内置字体的字节数据，name 可写为 "embed:Go-Regular.ttf" 或直接 "Go-Regular.ttf"。
func Load(name string) ([]byte, error) {
	clean := strings.TrimPrefix(name, "embed:")
	data, ok := builtin[clean]
	if !ok {
		return nil, fmt.Errorf("读取内置字体 %s 失败: 不存在", clean)
	}
	return data, nil
}
