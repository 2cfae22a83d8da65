package memory

import (
	"encoding/json"
	"fmt"
	"os"
)

// SeedBook 目录种子条目
// 种子文件是JSON数组——数组保证条目顺序，检索结果按这个顺序返回
// （viper会把配置展平成map，保不住顺序，所以种子单独放文件、单独解析）
type SeedBook struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// LoadSeed 从JSON文件加载目录种子
func LoadSeed(path string) ([]SeedBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取种子文件失败: %w", err)
	}

	var seed []SeedBook
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("解析种子文件失败: %w", err)
	}

	for i, entry := range seed {
		if entry.ISBN == "" {
			return nil, fmt.Errorf("种子文件第%d条缺少isbn", i+1)
		}
	}
	return seed, nil
}
