package layout

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON 将画布显示列表输出为 JSON，便于调试或比对坐标。
func WriteDebugJSON(c *Canvas, path string) error {
	if c == nil {
		return nil
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
