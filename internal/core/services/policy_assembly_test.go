package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
)

var assemblyNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func TestAssemblePolicy_BaseSections(t *testing.T) {
	doc := AssemblePolicy(fullInfo(), []string{"account_signup"}, nil, assemblyNow)

	require.NotNil(t, doc)
	assert.Equal(t, "멋진앱 개인정보처리방침", doc.Title)
	assert.Equal(t, 1, doc.Version)
	assert.Equal(t, assemblyNow, doc.GeneratedAt)

	// No outsourcing, third-party, or overseas data: base layout only.
	ids := make([]string, len(doc.Sections))
	for i, s := range doc.Sections {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{
		"header", "purpose", "collection", "rights",
		"destruction", "security", "officer", "remedies", "footer",
	}, ids)
}

func TestAssemblePolicy_SequentialNumbering(t *testing.T) {
	doc := AssemblePolicy(fullInfo(), []string{"account_signup"}, nil, assemblyNow)

	// Header and footer carry no article number.
	assert.Empty(t, doc.Sections[0].Title)
	assert.Empty(t, doc.Sections[len(doc.Sections)-1].Title)

	assert.Equal(t, "제1조 (개인정보의 처리 목적)", doc.Sections[1].Title)
	assert.Equal(t, "제2조 (개인정보의 처리 및 보유 기간)", doc.Sections[2].Title)
	assert.Equal(t, "제3조 (정보주체와 법정대리인의 권리·의무 및 그 행사방법)", doc.Sections[3].Title)
	assert.Equal(t, "제7조 (권익침해 구제방법)", doc.Sections[7].Title)
}

func TestAssemblePolicy_OptionalSectionsShiftNumbering(t *testing.T) {
	details := map[string]domain.DetailInput{
		"account_signup": {
			HasOutsourcing: true,
			OutsourcingList: []domain.OutsourcingEntry{
				{ID: "o1", CompanyName: "AWS", Task: "클라우드 인프라 운영", Country: "미국"},
			},
			HasThirdParty: true,
			ThirdPartyList: []domain.ThirdPartyEntry{
				{ID: "t1", Recipient: "PG사", Purpose: "결제 처리", Items: "카드번호, 유효기간", RetentionPeriod: "5년"},
			},
			HasOverseasTransfer: true,
			OverseasInfo: &domain.OverseasTransfer{
				Country: "미국", Trustee: "Amazon Web Services", TransferDate: "서비스 이용 시 수시",
				Method: "정보통신망을 통한 전송", Contact: "aws-korea-privacy@amazon.com",
			},
		},
	}

	doc := AssemblePolicy(fullInfo(), []string{"account_signup"}, details, assemblyNow)

	outsourcing := doc.Section("outsourcing")
	require.NotNil(t, outsourcing)
	assert.Equal(t, "제3조 (개인정보 처리 위탁)", outsourcing.Title)
	assert.Contains(t, outsourcing.Content, "AWS")

	thirdParty := doc.Section("thirdparty")
	require.NotNil(t, thirdParty)
	assert.Equal(t, "제4조 (개인정보의 제3자 제공)", thirdParty.Title)

	overseas := doc.Section("overseas")
	require.NotNil(t, overseas)
	assert.Equal(t, "제5조 (개인정보의 국외 이전)", overseas.Title)
	assert.Contains(t, overseas.Content, "Amazon Web Services")

	// The fixed tail sections shift down accordingly.
	assert.Equal(t, "제6조 (정보주체와 법정대리인의 권리·의무 및 그 행사방법)", doc.Section("rights").Title)
	assert.Equal(t, "제10조 (권익침해 구제방법)", doc.Section("remedies").Title)
}

func TestAssemblePolicy_EmptyListsOmitSections(t *testing.T) {
	// HasOutsourcing without entries must not produce a section.
	details := map[string]domain.DetailInput{
		"account_signup": {HasOutsourcing: true, HasThirdParty: true},
	}
	doc := AssemblePolicy(fullInfo(), []string{"account_signup"}, details, assemblyNow)

	assert.Nil(t, doc.Section("outsourcing"))
	assert.Nil(t, doc.Section("thirdparty"))
	assert.Nil(t, doc.Section("overseas"))
}

func TestAssemblePolicy_SkipsUnknownItems(t *testing.T) {
	doc := AssemblePolicy(fullInfo(), []string{"account_signup", "no_such_item"}, nil, assemblyNow)

	assert.NotContains(t, doc.Content, "no_such_item")
	assert.Contains(t, doc.Section("purpose").Content, "회원가입(이메일)")
}

func TestAssemblePolicy_PlaceholdersForMissingInput(t *testing.T) {
	info := fullInfo() // no officer fields
	doc := AssemblePolicy(info, []string{"account_signup"}, nil, assemblyNow)

	officer := doc.Section("officer")
	require.NotNil(t, officer)
	assert.Contains(t, officer.Content, "성명: 미지정")
	// Contact falls back to the service contact email.
	assert.Contains(t, officer.Content, "연락처: contact@example.com")

	// Missing detail input falls back to generic collection text.
	assert.Contains(t, doc.Section("collection").Content, "해당 서비스 관련 정보")
}

func TestAssemblePolicy_OfficerPlaceholderWithoutEmail(t *testing.T) {
	info := fullInfo()
	info.ContactEmail = ""
	doc := AssemblePolicy(info, []string{"account_signup"}, nil, assemblyNow)

	assert.Contains(t, doc.Section("officer").Content, "연락처: 미지정")
}

func TestAssemblePolicy_HeaderAndFooterDates(t *testing.T) {
	doc := AssemblePolicy(fullInfo(), []string{"account_signup"}, nil, assemblyNow)

	assert.Contains(t, doc.Sections[0].Content, "시행일: 2026. 3. 15.")
	assert.Contains(t, doc.Sections[len(doc.Sections)-1].Content, "2026. 3. 15.부터 적용됩니다")
}

func TestAssemblePolicy_Deterministic(t *testing.T) {
	details := map[string]domain.DetailInput{
		"account_signup": {
			Purpose:         "회원 관리",
			Items:           []string{"이메일", "비밀번호"},
			RetentionPeriod: domain.RetentionWithdrawal,
		},
	}

	a := AssemblePolicy(fullInfo(), []string{"account_signup"}, details, assemblyNow)
	b := AssemblePolicy(fullInfo(), []string{"account_signup"}, details, assemblyNow)

	assert.Equal(t, a.Content, b.Content)
	assert.Equal(t, a.Sections, b.Sections)
}

func TestAssemblePolicy_ContentJoinsSections(t *testing.T) {
	doc := AssemblePolicy(fullInfo(), []string{"account_signup"}, nil, assemblyNow)

	parts := make([]string, len(doc.Sections))
	for i, s := range doc.Sections {
		parts[i] = s.Content
	}
	assert.Equal(t, strings.Join(parts, "\n"), doc.Content)
}
