package ambr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	htmlTagRe      = regexp.MustCompile(`<.*?>|\{SPRITE_PRESET#[^}]+\}`)
	spritePresetRe = regexp.MustCompile(`\{SPRITE_PRESET#[^}]+\}`)

	femalePronounRe = regexp.MustCompile(`\{F#(.*?)\}`)
	malePronounRe   = regexp.MustCompile(`\{M#(.*?)\}`)

	placeholderRe = regexp.MustCompile(`\{[^}]*\}`)
	paramSpecRe   = regexp.MustCompile(`\{param(\d+):([^}]*)\}`)
	layoutRe      = regexp.MustCompile(`\{LAYOUT.*?\}`)
	layoutWordRe  = regexp.MustCompile(`\{LAYOUT.*?#(.*?)\}`)
)

// RemoveHTMLTags removes HTML tags and sprite presets from a string.
func RemoveHTMLTags(text string) string {
	return strings.ReplaceAll(htmlTagRe.ReplaceAllString(text, ""), `\n`, "\n")
}

// ReplacePlaceholders replaces $[key] placeholders with values from params and
// strips sprite presets.
func ReplacePlaceholders(text string, params map[string]any) string {
	for key, value := range params {
		text = strings.ReplaceAll(text, "$["+key+"]", formatParamValue(value))
	}
	return spritePresetRe.ReplaceAllString(text, "")
}

// ReplacePronouns rewrites gendered pronoun markers in the form {F#She}/{M#He}
// to She/He.
func ReplacePronouns(text string) string {
	female := femalePronounRe.FindStringSubmatch(text)
	male := malePronounRe.FindStringSubmatch(text)
	if female == nil || male == nil {
		return text
	}

	replacement := female[1] + "/" + male[1]
	text = femalePronounRe.ReplaceAllString(text, replacement)
	text = malePronounRe.ReplaceAllString(text, "")
	return strings.ReplaceAll(text, "#", "")
}

// FormatLayout extracts and replaces layout placeholders like
// {LAYOUT_MOBILE#Character Skill} with their content.
func FormatLayout(text string) string {
	if !strings.Contains(text, "LAYOUT") {
		return text
	}
	brackets := layoutRe.FindAllString(text, -1)
	if len(brackets) == 0 {
		return text
	}
	word := layoutWordRe.FindStringSubmatch(brackets[0])
	if word == nil {
		return text
	}
	return strings.ReplaceAll(text, strings.Join(brackets, ""), word[1])
}

// GetParams replaces {param<index>:<format>} placeholders in text with
// formatted values from params, then splits the result by '|'.
//
// Supported formats: F1P/F2P (value*100 with 1 or 2 decimals and '%'),
// F1/F2 (1 or 2 decimals), P (value*100 with no decimals and '%'),
// I (integer).
func GetParams(text string, params []float64) []string {
	for _, item := range placeholderRe.FindAllString(text, -1) {
		if !strings.Contains(item, "param") {
			continue
		}
		spec := paramSpecRe.FindStringSubmatch(item)
		if spec == nil {
			continue
		}
		index, err := strconv.Atoi(spec[1])
		if err != nil || index < 1 || index > len(params) {
			continue
		}
		value := params[index-1]

		var result string
		switch format := spec[2]; format {
		case "F1P", "F2P":
			result = formatNum(int(format[1]-'0'), value*100) + "%"
		case "F1", "F2":
			result = formatNum(int(format[1]-'0'), value)
		case "P":
			result = formatNum(0, value*100) + "%"
		case "I":
			result = strconv.Itoa(int(value))
		default:
			continue
		}
		text = strings.ReplaceAll(text, item, result)
	}

	text = FormatLayout(text)
	text = strings.ReplaceAll(text, "{NON_BREAK_SPACE}", "")
	text = strings.ReplaceAll(text, "#", "")
	return strings.Split(text, "|")
}

// GetSkillAttributes renders "key: value" lines for skill attribute
// descriptions whose parameters have been substituted with GetParams.
func GetSkillAttributes(descriptions []string, params []float64) string {
	var sb strings.Builder
	for _, desc := range descriptions {
		parts := GetParams(desc, params)
		if len(parts) != 2 {
			continue
		}
		sb.WriteString(parts[0])
		sb.WriteString(": ")
		sb.WriteString(parts[1])
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatNum(digits int, value float64) string {
	return strconv.FormatFloat(value, 'f', digits, 64)
}

func formatParamValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
