package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutlineBoldHeadings(t *testing.T) {
	response := `설교 개요를 제안드립니다.

**1. 서론: 하나님의 부르심**
**2. 본론: 순종의 길**
**3. 결론: 축복의 약속**`

	outline := Outline(response)
	assert.Equal(t, []string{"1. 서론", "2. 본론", "3. 결론"}, outline)
}

func TestOutlineNumberedHeadings(t *testing.T) {
	response := `1. 서론: 시작하며
2. 본론: 말씀 속으로
3. 결론: 삶으로 이어지는 믿음`

	outline := Outline(response)
	assert.Equal(t, []string{
		"1. 서론: 시작하며",
		"2. 본론: 말씀 속으로",
		"3. 결론: 삶으로 이어지는 믿음",
	}, outline)
}

func TestOutlineNumberedHeadingsStripBoldAndColon(t *testing.T) {
	response := `**1. 서론 들어가며:**
**2. 본론 말씀의 중심:**
**3. 결론 결단의 시간:**`

	outline := Outline(response)
	assert.Equal(t, []string{
		"1. 서론 들어가며",
		"2. 본론 말씀의 중심",
		"3. 결론 결단의 시간",
	}, outline)
}

func TestOutlineLabeledLinesFallback(t *testing.T) {
	response := `## 1. 서론: 왜 기도하는가
## 2. 본론: 쉬지 말고 기도하라
## 3. 결론: 기도로 사는 삶`

	outline := Outline(response)
	assert.Equal(t, []string{
		"1. 서론: 왜 기도하는가",
		"2. 본론: 쉬지 말고 기도하라",
		"3. 결론: 기도로 사는 삶",
	}, outline)
}

func TestOutlineUnlabeledNumberedReturnsEmpty(t *testing.T) {
	// Numbered lines without a section label are not outline headings.
	response := `1. 첫째 요점입니다
2. 둘째 요점입니다
3. 셋째 요점입니다`

	outline := Outline(response)
	assert.NotNil(t, outline)
	assert.Empty(t, outline)
}

func TestOutlineProseReturnsEmpty(t *testing.T) {
	response := `이 본문으로 설교를 준비하실 때는 먼저 배경을 살펴보시기 바랍니다.`

	outline := Outline(response)
	assert.NotNil(t, outline)
	assert.Empty(t, outline)
}
