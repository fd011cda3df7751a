package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/biblestudio/bible-studio-api/internal/bible"
	"github.com/biblestudio/bible-studio-api/internal/database"
	"github.com/biblestudio/bible-studio-api/internal/testutil"
)

func seedCorpus(t *testing.T, db *database.DB) {
	t.Helper()
	testutil.SeedVerses(t, db, []database.Verse{
		{BookName: "창세기", BookCode: 1, Chapter: 1, Number: 1, Text: "태초에 하나님이 천지를 창조하시니라", Version: "korean-contemporary"},
		{BookName: "창세기", BookCode: 1, Chapter: 1, Number: 2, Text: "땅이 혼돈하고 공허하며", Version: "korean-contemporary"},
		{BookName: "창세기", BookCode: 1, Chapter: 2, Number: 1, Text: "천지와 만물이 다 이루어지니라", Version: "korean-contemporary"},
		{BookName: "사무엘상", BookCode: 9, Chapter: 1, Number: 1, Text: "하나님의 사람이 있었으니", Version: "korean-contemporary"},
		{BookName: "사무엘하", BookCode: 10, Chapter: 1, Number: 1, Text: "사울이 죽은 후에 하나님의 뜻을 물으니", Version: "korean-contemporary"},
		{BookName: "마태복음", BookCode: 40, Chapter: 1, Number: 1, Text: "아브라함과 다윗의 자손 예수 그리스도의 계보라", Version: "korean-contemporary"},
		{BookName: "창세기", BookCode: 1, Chapter: 1, Number: 1, Text: "In the beginning God created the heavens", Version: "niv"},
	})
}

func TestListBooks(t *testing.T) {
	db, repo := testutil.SetupTestDB(t)
	seedCorpus(t, db)

	books, err := repo.ListBooks()
	require.NoError(t, err)
	require.Len(t, books, 4)

	// Numeric ordering: book 9 and 10 come before 40.
	assert.Equal(t, "창세기", books[0].Name)
	assert.Equal(t, "사무엘상", books[1].Name)
	assert.Equal(t, "사무엘하", books[2].Name)
	assert.Equal(t, "마태복음", books[3].Name)

	assert.Equal(t, bible.TestamentOld, books[0].Testament)
	assert.Equal(t, bible.TestamentOld, books[2].Testament)
	assert.Equal(t, bible.TestamentNew, books[3].Testament)

	// 창세기 appears in two versions but is listed once, with the
	// highest chapter seen.
	assert.Equal(t, 2, books[0].ChapterCount)
}

func TestListVerses(t *testing.T) {
	db, repo := testutil.SetupTestDB(t)
	seedCorpus(t, db)

	verses, err := repo.ListVerses("창세기", 1, "korean-contemporary")
	require.NoError(t, err)
	require.Len(t, verses, 2)
	assert.Equal(t, 1, verses[0].Number)
	assert.Equal(t, 2, verses[1].Number)

	// Version filter is exact.
	verses, err = repo.ListVerses("창세기", 1, "niv")
	require.NoError(t, err)
	require.Len(t, verses, 1)
	assert.Equal(t, "In the beginning God created the heavens", verses[0].Text)

	// Unknown chapter yields an empty list, not an error.
	verses, err = repo.ListVerses("창세기", 99, "korean-contemporary")
	require.NoError(t, err)
	assert.Empty(t, verses)
}

func TestGetVerse(t *testing.T) {
	db, repo := testutil.SetupTestDB(t)
	seedCorpus(t, db)

	v, err := repo.GetVerse("창세기", 1, 1, "korean-contemporary")
	require.NoError(t, err)
	assert.Equal(t, "태초에 하나님이 천지를 창조하시니라", v.Text)

	_, err = repo.GetVerse("창세기", 1, 99, "korean-contemporary")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSearchVerses(t *testing.T) {
	db, repo := testutil.SetupTestDB(t)
	seedCorpus(t, db)

	verses, err := repo.SearchVerses("하나님의", "korean-contemporary")
	require.NoError(t, err)
	require.Len(t, verses, 2)

	// Canonical ordering: book 9 before book 10.
	assert.Equal(t, "사무엘상", verses[0].BookName)
	assert.Equal(t, "사무엘하", verses[1].BookName)
}

func TestSearchVersesCaseSensitive(t *testing.T) {
	db, repo := testutil.SetupTestDB(t)
	seedCorpus(t, db)

	verses, err := repo.SearchVerses("god", "niv")
	require.NoError(t, err)
	assert.Empty(t, verses, "lowercase query must not match capitalized text")

	verses, err = repo.SearchVerses("God", "niv")
	require.NoError(t, err)
	assert.Len(t, verses, 1)
}

func TestSearchVersesLimit(t *testing.T) {
	db, repo := testutil.SetupTestDB(t)

	verses := make([]database.Verse, 0, database.SearchLimit+10)
	for i := 1; i <= database.SearchLimit+10; i++ {
		verses = append(verses, database.Verse{
			BookName: "시편", BookCode: 19, Chapter: 1, Number: i,
			Text: "여호와를 찬양하라", Version: "korean-contemporary",
		})
	}
	testutil.SeedVerses(t, db, verses)

	found, err := repo.SearchVerses("찬양", "korean-contemporary")
	require.NoError(t, err)
	assert.Len(t, found, database.SearchLimit)
}

func TestListCommentaries(t *testing.T) {
	_, repo := testutil.SetupTestDB(t)

	require.NoError(t, repo.AddCommentaries([]database.Commentary{
		{BookName: "창세기", Chapter: 1, VerseStart: 3, VerseEnd: 5, Content: "빛의 창조에 대한 주석", Author: "김목사"},
		{BookName: "창세기", Chapter: 1, VerseStart: 1, VerseEnd: 2, Content: "창조의 시작에 대한 주석", Author: "김목사"},
		{BookName: "창세기", Chapter: 2, VerseStart: 1, VerseEnd: 1, Content: "안식에 대한 주석", Author: "김목사"},
	}))

	entries, err := repo.ListCommentaries("창세기", 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Ordered by the start of the covered range.
	assert.Equal(t, 1, entries[0].VerseStart)
	assert.Equal(t, 3, entries[1].VerseStart)

	assert.True(t, entries[1].Covers(4))
	assert.False(t, entries[1].Covers(2))
}
