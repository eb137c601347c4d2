package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceType_IsValid(t *testing.T) {
	valid := []ServiceType{
		ServiceTypeSaaS,
		ServiceTypeCommerce,
		ServiceTypeCommunity,
		ServiceTypeApp,
		ServiceTypeOffline,
	}
	for _, st := range valid {
		assert.True(t, st.IsValid(), "expected %q to be valid", st)
	}

	assert.False(t, ServiceType("").IsValid())
	assert.False(t, ServiceType("blog").IsValid())
}

func TestServiceInfo_RequiredFilled(t *testing.T) {
	info := ServiceInfo{}
	assert.Equal(t, 0, info.RequiredFilled())

	info.ServiceName = "멋진앱"
	assert.Equal(t, 1, info.RequiredFilled())

	info.CompanyName = "주식회사 멋진"
	info.ContactEmail = "contact@example.com"
	assert.Equal(t, 3, info.RequiredFilled())

	// Optional fields don't count.
	info.ContactPhone = "02-0000-0000"
	info.PrivacyOfficerName = "홍길동"
	assert.Equal(t, 3, info.RequiredFilled())
}

func TestServiceInfoPatch_Apply(t *testing.T) {
	info := ServiceInfo{
		ServiceName:  "원래이름",
		CompanyName:  "원래회사",
		ContactEmail: "old@example.com",
	}

	name := "새이름"
	st := ServiceTypeCommerce
	patch := ServiceInfoPatch{
		ServiceName: &name,
		ServiceType: &st,
	}
	patch.Apply(&info)

	assert.Equal(t, "새이름", info.ServiceName)
	assert.Equal(t, ServiceTypeCommerce, info.ServiceType)
	// Unpatched fields stay untouched.
	assert.Equal(t, "원래회사", info.CompanyName)
	assert.Equal(t, "old@example.com", info.ContactEmail)
}

func TestNewDetailInput_Defaults(t *testing.T) {
	in := NewDetailInput()

	assert.Equal(t, RetentionWithdrawal, in.RetentionPeriod)
	assert.NotNil(t, in.Items)
	assert.Empty(t, in.Items)
	assert.NotNil(t, in.OutsourcingList)
	assert.NotNil(t, in.ThirdPartyList)
	assert.False(t, in.HasOutsourcing)
	assert.False(t, in.HasThirdParty)
	assert.False(t, in.HasOverseasTransfer)
	assert.Nil(t, in.OverseasInfo)
}

func TestDetailInputPatch_Apply(t *testing.T) {
	in := NewDetailInput()
	in.Purpose = "회원 관리"

	items := []string{"이메일", "이름"}
	retention := RetentionCustom
	custom := "계약 종료 후 1년"
	patch := DetailInputPatch{
		Items:           &items,
		RetentionPeriod: &retention,
		CustomRetention: &custom,
	}
	patch.Apply(&in)

	assert.Equal(t, "회원 관리", in.Purpose)
	assert.Equal(t, []string{"이메일", "이름"}, in.Items)
	assert.Equal(t, RetentionCustom, in.RetentionPeriod)
	assert.Equal(t, "계약 종료 후 1년", in.CustomRetention)
}

func TestGeneratedDocument_Section(t *testing.T) {
	doc := GeneratedDocument{
		Sections: []DocumentSection{
			{ID: "header", Content: "a"},
			{ID: "purpose", Content: "b"},
		},
	}

	sec := doc.Section("purpose")
	assert.NotNil(t, sec)
	assert.Equal(t, "b", sec.Content)

	// The pointer aliases the slice element so edits stick.
	sec.Content = "c"
	assert.Equal(t, "c", doc.Sections[1].Content)

	assert.Nil(t, doc.Section("missing"))
}
