package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
)

func TestStripTags_Paragraphs(t *testing.T) {
	got := StripTags("<p>첫째 문단</p><p>둘째 문단</p>")
	assert.Equal(t, "첫째 문단\n둘째 문단", got)
}

func TestStripTags_LineBreaks(t *testing.T) {
	got := StripTags("첫째 줄<br>둘째 줄<br/>셋째 줄")
	assert.Equal(t, "첫째 줄\n둘째 줄\n셋째 줄", got)
}

func TestStripTags_TableCellsBecomeTabs(t *testing.T) {
	got := StripTags("<table><tr><th>항목</th><th>목적</th></tr><tr><td>이메일</td><td>회원 관리</td></tr></table>")
	lines := strings.Split(got, "\n")
	assert.Equal(t, "항목\t목적", lines[0])
	assert.Equal(t, "이메일\t회원 관리", lines[1])
}

func TestStripTags_UnescapesEntities(t *testing.T) {
	got := StripTags("<p>A &amp; B &lt;C&gt;</p>")
	assert.Equal(t, "A & B <C>", got)
}

func TestStripTags_CollapsesBlankLines(t *testing.T) {
	got := StripTags("<div><p>첫째</p></div><div><p>둘째</p></div>")
	assert.Equal(t, "첫째\n\n둘째", got)
}

func TestStripTags_IgnoresAttributes(t *testing.T) {
	got := StripTags(`<p class="purpose-item">본문</p>`)
	assert.Equal(t, "본문", got)
}

func TestStripTags_PlainTextPassesThrough(t *testing.T) {
	assert.Equal(t, "태그 없는 본문", StripTags("태그 없는 본문"))
	assert.Equal(t, "", StripTags(""))
}

func sampleDoc() *domain.GeneratedDocument {
	return &domain.GeneratedDocument{
		Title: "멋진앱 개인정보처리방침",
		Sections: []domain.DocumentSection{
			{ID: "header", Content: "<h1>멋진앱 개인정보처리방침</h1>", Order: 1},
			{ID: "purpose", Title: "제1조 (개인정보의 처리 목적)", Content: "<p>본문입니다.</p>", Order: 2},
		},
	}
}

func TestRenderer_Text(t *testing.T) {
	got := NewRenderer().Text(sampleDoc())

	assert.Contains(t, got, "멋진앱 개인정보처리방침")
	assert.Contains(t, got, "제1조 (개인정보의 처리 목적)\n\n본문입니다.")
	assert.NotContains(t, got, "<p>")
	assert.NotContains(t, got, "<h1>")
}

func TestRenderer_HTML(t *testing.T) {
	got := NewRenderer().HTML(sampleDoc())

	assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"))
	assert.Contains(t, got, `<html lang="ko">`)
	assert.Contains(t, got, "<title>멋진앱 개인정보처리방침</title>")
	assert.Contains(t, got, "<style>")
	// Section fragments are embedded as-is, titles become headings.
	assert.Contains(t, got, "<h1>멋진앱 개인정보처리방침</h1>")
	assert.Contains(t, got, "<h2>제1조 (개인정보의 처리 목적)</h2>")
	assert.Contains(t, got, "<p>본문입니다.</p>")
	assert.True(t, strings.HasSuffix(got, "</html>\n"))
}

func TestRenderer_HTMLEscapesTitle(t *testing.T) {
	doc := &domain.GeneratedDocument{
		Title: `A <B> & "C"`,
		Sections: []domain.DocumentSection{
			{ID: "s", Title: "T <x>", Content: ""},
		},
	}
	got := NewRenderer().HTML(doc)

	assert.Contains(t, got, "<title>A &lt;B&gt; &amp; &#34;C&#34;</title>")
	assert.Contains(t, got, "<h2>T &lt;x&gt;</h2>")
}
