// Package bible holds canon-level constants: the 66-book ordering,
// testament classification, and built-in version display names.
package bible

// Testament labels. The UI language of the source data is Korean,
// so the labels are the Korean terms for Old/New Testament.
const (
	TestamentOld = "구약"
	TestamentNew = "신약"
)

// OldTestamentMaxCode is the highest book code in the Old Testament.
// Codes 1-39 are Old Testament, 40-66 New Testament.
const OldTestamentMaxCode = 39

// MaxBookCode is the highest valid book code in the Protestant canon.
const MaxBookCode = 66

// Testament classifies a book code. Codes at or below 39 are Old
// Testament; everything above is New Testament.
func Testament(bookCode int) string {
	if bookCode <= OldTestamentMaxCode {
		return TestamentOld
	}
	return TestamentNew
}

// BookNames maps book codes (1-66) to canonical Korean book names.
// The verses table stores these names in book_name; the importer uses
// this map to derive book_code for records that carry only a name.
var BookNames = map[int]string{
	1: "창세기", 2: "출애굽기", 3: "레위기", 4: "민수기", 5: "신명기",
	6: "여호수아", 7: "사사기", 8: "룻기", 9: "사무엘상", 10: "사무엘하",
	11: "열왕기상", 12: "열왕기하", 13: "역대상", 14: "역대하", 15: "에스라",
	16: "느헤미야", 17: "에스더", 18: "욥기", 19: "시편", 20: "잠언",
	21: "전도서", 22: "아가", 23: "이사야", 24: "예레미야", 25: "예레미야애가",
	26: "에스겔", 27: "다니엘", 28: "호세아", 29: "요엘", 30: "아모스",
	31: "오바댜", 32: "요나", 33: "미가", 34: "나훔", 35: "하박국",
	36: "스바냐", 37: "학개", 38: "스가랴", 39: "말라기",
	40: "마태복음", 41: "마가복음", 42: "누가복음", 43: "요한복음", 44: "사도행전",
	45: "로마서", 46: "고린도전서", 47: "고린도후서", 48: "갈라디아서", 49: "에베소서",
	50: "빌립보서", 51: "골로새서", 52: "데살로니가전서", 53: "데살로니가후서", 54: "디모데전서",
	55: "디모데후서", 56: "디도서", 57: "빌레몬서", 58: "히브리서", 59: "야고보서",
	60: "베드로전서", 61: "베드로후서", 62: "요한일서", 63: "요한이서", 64: "요한삼서",
	65: "유다서", 66: "요한계시록",
}

// bookCodes is the reverse of BookNames, built once at init.
var bookCodes = func() map[string]int {
	m := make(map[string]int, len(BookNames))
	for code, name := range BookNames {
		m[name] = code
	}
	return m
}()

// BookCode returns the canonical code for a Korean book name, or 0 if
// the name is not part of the canon.
func BookCode(name string) int {
	return bookCodes[name]
}

// DefaultDisplayNames maps well-known version ids to human-friendly
// labels. An explicit row in version_display_names overrides these;
// unknown ids fall back to the raw id.
var DefaultDisplayNames = map[string]string{
	"korean-standard":     "새번역",
	"korean-revised":      "개역개정",
	"korean-traditional":  "개역한글판",
	"korean-contemporary": "현대인의성경",
	"korean-new-standard": "표준새번역",
	"niv":                 "NIV",
}

// DefaultVersion is the version id assumed when a request omits one.
const DefaultVersion = "korean-contemporary"
