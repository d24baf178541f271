package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 在空白处断行，连续空白折叠为一个空格
//   - 单词本身超过最大宽度时按字符强制断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	words := strings.Fields(textStr)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	currentLine := ""

	for _, word := range words {
		candidate := word
		if currentLine != "" {
			candidate = currentLine + " " + word
		}
		if MeasureTextWidth(candidate, font) <= maxWidth {
			currentLine = candidate
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}

		if MeasureTextWidth(word, font) <= maxWidth {
			currentLine = word
			continue
		}

		// 超长单词按字符拆分，最后一段留给后续单词拼接
		pieces := splitRunes(word, font, maxWidth)
		lines = append(lines, pieces[:len(pieces)-1]...)
		currentLine = pieces[len(pieces)-1]
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// splitRunes 按字符把单词切成不超过 maxWidth 的片段
// 单个字符就超宽时独占一段
func splitRunes(word string, font *text.GoTextFace, maxWidth float64) []string {
	var pieces []string
	current := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		word = word[size:]

		candidate := current + string(r)
		if current != "" && MeasureTextWidth(candidate, font) > maxWidth {
			pieces = append(pieces, current)
			current = string(r)
			continue
		}
		current = candidate
	}
	return append(pieces, current)
}

// MeasureTextWidth 测量单行文本宽度
func MeasureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}

// LineHeight 按行距倍数计算的行高
func LineHeight(font *text.GoTextFace, spacing float64) float64 {
	if font == nil {
		return 0
	}
	return font.Size * spacing
}
