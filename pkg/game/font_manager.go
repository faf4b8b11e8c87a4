package game

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// FontManager 管理多语言文字使用的字体回退链
//
// 祝福语覆盖拉丁、中日文、西里尔、阿拉伯与天城文，单一字体无法覆盖，
// 因此按配置顺序加载多个字体源，组合为 text.MultiFace：
// 前面的字体缺字时由后面的字体补齐。内置 Go Regular 字体总在最后。
//
// 字体面按字号缓存，字号随视口宽度变化，缓存键精确到 0.1 像素。
type FontManager struct {
	sources   []*text.GoTextFaceSource
	faceCache map[string]text.Face
}

// NewFontManager 加载字体回退链
//
// 参数：
//   - paths: 字体文件路径（.ttf/.otf/.ttc），不存在或无法解析的文件会被跳过并记录警告
//
// 返回：
//   - *FontManager: 至少包含内置字体的管理器
//   - error: 仅在内置字体也无法解析时返回
func NewFontManager(paths []string) (*FontManager, error) {
	fm := &FontManager{
		faceCache: make(map[string]text.Face),
	}

	for _, path := range paths {
		sources, err := loadFontSources(path)
		if err != nil {
			log.Printf("[FontManager] Warning: skipping font %s: %v", path, err)
			continue
		}
		fm.sources = append(fm.sources, sources...)
		log.Printf("[FontManager] Loaded font %s (%d faces)", path, len(sources))
	}

	fallback, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create fallback font source: %w", err)
	}
	fm.sources = append(fm.sources, fallback)

	return fm, nil
}

// loadFontSources 读取单个字体文件，.ttc 集合展开为多个字体源
func loadFontSources(path string) ([]*text.GoTextFaceSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".ttc") {
		sources, err := text.NewGoTextFaceSourcesFromCollection(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create font collection for %s: %w", path, err)
		}
		return sources, nil
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}
	return []*text.GoTextFaceSource{source}, nil
}

// SourceCount 返回回退链中的字体源数量（含内置字体）
func (fm *FontManager) SourceCount() int {
	return len(fm.sources)
}

// Face 返回指定字号的字体面
//
// 只有一个字体源时直接返回 GoTextFace，否则返回按回退顺序组合的 MultiFace。
// 非正字号按 1 处理。
func (fm *FontManager) Face(size float64) text.Face {
	if size < 1 {
		size = 1
	}

	cacheKey := fmt.Sprintf("%.1f", size)
	if cached, exists := fm.faceCache[cacheKey]; exists {
		return cached
	}

	faces := make([]text.Face, 0, len(fm.sources))
	for _, source := range fm.sources {
		faces = append(faces, &text.GoTextFace{
			Source: source,
			Size:   size,
		})
	}

	var face text.Face = faces[0]
	if len(faces) > 1 {
		multi, err := text.NewMultiFace(faces...)
		if err != nil {
			log.Printf("[FontManager] Warning: failed to combine fonts: %v (using fallback only)", err)
			face = faces[len(faces)-1]
		} else {
			face = multi
		}
	}

	fm.faceCache[cacheKey] = face
	return face
}
