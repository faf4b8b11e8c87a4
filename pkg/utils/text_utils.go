package utils

import (
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - str: 要换行的文本，已有的 '\n' 保留为段落分隔
//   - face: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行，单词保持完整
//   - 没有空格（中日韩文字）或单词本身超宽时按字符断行
func WrapText(str string, face text.Face, maxWidth float64) []string {
	if str == "" || face == nil || maxWidth <= 0 {
		return []string{str}
	}

	var lines []string
	for _, paragraph := range strings.Split(str, "\n") {
		lines = append(lines, wrapParagraph(paragraph, face, maxWidth)...)
	}
	return lines
}

func wrapParagraph(paragraph string, face text.Face, maxWidth float64) []string {
	if measureTextWidth(paragraph, face) <= maxWidth {
		return []string{paragraph}
	}

	var lines []string
	var line []rune
	lastSpace := -1

	for _, r := range paragraph {
		line = append(line, r)
		if unicode.IsSpace(r) {
			lastSpace = len(line) - 1
			continue
		}
		if measureTextWidth(string(line), face) <= maxWidth {
			continue
		}

		switch {
		case lastSpace > 0:
			lines = append(lines, strings.TrimSpace(string(line[:lastSpace])))
			line = append([]rune(nil), line[lastSpace+1:]...)
		case len(line) > 1:
			lines = append(lines, strings.TrimSpace(string(line[:len(line)-1])))
			line = []rune{r}
		default:
			// 单个字符就超宽，强制独占一行
			lines = append(lines, string(line))
			line = line[:0]
		}
		lastSpace = -1
	}

	if rest := strings.TrimSpace(string(line)); rest != "" {
		lines = append(lines, rest)
	}
	if len(lines) == 0 {
		return []string{paragraph}
	}
	return lines
}

// measureTextWidth 测量单行文本宽度
func measureTextWidth(str string, face text.Face) float64 {
	if str == "" {
		return 0
	}
	width, _ := text.Measure(str, face, 0)
	return width
}
