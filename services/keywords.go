package services

import (
	"sort"
	"strings"
	"unicode"
)

// stopWords 常见英文、中文虚词以及本应用里出现频率过高的领域词
var stopWords = toSet(
	// English
	"a", "an", "the", "and", "or", "but", "if", "then", "else", "of", "to", "in", "on", "at",
	"by", "for", "with", "from", "as", "is", "are", "was", "were", "be", "been", "being",
	"it", "its", "this", "that", "these", "those", "i", "me", "my", "we", "our", "you", "your",
	"he", "she", "they", "them", "his", "her", "their", "do", "does", "did", "have", "has", "had",
	"not", "no", "so", "too", "very", "can", "will", "just", "should", "would", "could", "about",
	"into", "over", "more", "some", "any", "all", "what", "which", "who", "how", "when", "where",
	"there", "here", "up", "out", "also",
	// 中文
	"的", "了", "和", "是", "在", "我", "有", "就", "不", "人", "都", "一", "一个", "上", "也",
	"很", "到", "说", "要", "去", "你", "会", "着", "没有", "看", "好", "自己", "这", "那",
	"他", "她", "它", "我们", "你们", "他们", "这个", "那个", "以及", "还有", "但是", "因为",
	"所以", "如果", "或者", "而且", "然后", "可以", "已经", "还是", "什么", "怎么",
	// 领域词
	"task", "tasks", "goal", "goals", "note", "notes", "todo",
	"任务", "目标", "笔记", "灵感", "知识", "完成", "学习", "记录", "今天",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// isTokenRune 连续的汉字整体算一个词，所以 "的"、"了" 这类停用词只有被标点或空白隔开时才会被过滤
func isTokenRune(r rune) bool {
	return (r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))) || unicode.Is(unicode.Han, r)
}

// Tokenize 按非字母数字、非汉字的字符切分并转为小写
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !isTokenRune(r)
	})
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return fields
}

// ExtractKeywords 返回出现次数最多的 limit 个词，次数相同时先出现的排前面
func ExtractKeywords(text string, limit int) []string {
	if limit <= 0 {
		return []string{}
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, token := range Tokenize(text) {
		if _, stop := stopWords[token]; stop {
			continue
		}
		if _, seen := counts[token]; !seen {
			order = append(order, token)
		}
		counts[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	return order
}
