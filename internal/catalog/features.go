package catalog

import "github.com/lawkit-dev/lawkit-cli/internal/core/domain"

// FeatureBasic is the always-included terms feature; it cannot be
// toggled off.
const FeatureBasic = "basic"

// TermsFeature describes one service capability the terms wizard can
// select. Each selected feature pulls its clause set into the document.
type TermsFeature struct {
	ID string

	Name string

	Description string

	Category Category

	// IsRequired marks features every document must include.
	IsRequired bool

	// NeedsLegalNotice marks features with statutory disclosure duties.
	NeedsLegalNotice bool

	Tooltip string

	// RelatedLaws lists the statutes the feature's clauses derive from.
	RelatedLaws []string
}

// TermsFeatures is the full terms catalog in display order.
var TermsFeatures = []TermsFeature{
	{
		ID:          FeatureBasic,
		Name:        "기본 조항",
		Description: "모든 서비스에 필수적인 기본 약관 조항",
		Category:    CategoryBasic,
		IsRequired:  true,
		Tooltip:     "총칙, 회원가입, 서비스 이용, 금지행위, 계약해지 등 기본 조항이 포함됩니다.",
		RelatedLaws: []string{"정보통신망법", "전자문서법"},
	},
	{
		ID:               "paid_service",
		Name:             "유료 서비스",
		Description:      "유료 콘텐츠, 상품, 서비스 판매",
		Category:         CategoryAdvanced,
		NeedsLegalNotice: true,
		Tooltip:          "유료 서비스 제공 시 전자상거래법 준수 조항이 필요합니다.",
		RelatedLaws:      []string{"전자상거래법", "소비자기본법"},
	},
	{
		ID:               "subscription",
		Name:             "구독 모델",
		Description:      "정기결제 및 자동 갱신 서비스",
		Category:         CategoryAdvanced,
		NeedsLegalNotice: true,
		Tooltip:          "구독 서비스는 자동 갱신 및 해지 절차에 대한 명확한 고지가 필요합니다.",
		RelatedLaws:      []string{"전자상거래법", "약관규제법"},
	},
	{
		ID:               "ecommerce",
		Name:             "전자상거래/쇼핑몰",
		Description:      "재화 판매, 배송, 교환/반품",
		Category:         CategoryAdvanced,
		NeedsLegalNotice: true,
		Tooltip:          "상품 판매 시 전자상거래법의 청약철회, 환불 등 조항이 필수입니다.",
		RelatedLaws:      []string{"전자상거래법", "소비자기본법"},
	},
	{
		ID:               "community_ugc",
		Name:             "커뮤니티/UGC",
		Description:      "게시물 업로드, 댓글, 사용자 생성 콘텐츠",
		Category:         CategoryAdvanced,
		NeedsLegalNotice: true,
		Tooltip:          "사용자 생성 콘텐츠에 대한 권리 귀속 및 삭제 정책이 필요합니다.",
		RelatedLaws:      []string{"정보통신망법", "저작권법"},
	},
	{
		ID:               "ai_feature",
		Name:             "AI 기능 제공",
		Description:      "AI 생성 결과물, 자동화 서비스",
		Category:         CategoryAdvanced,
		NeedsLegalNotice: true,
		Tooltip:          "AI 결과물에 대한 책임 제한 및 데이터 학습 사용 여부 고지가 필요합니다.",
		RelatedLaws:      []string{"정보통신망법"},
	},
	{
		ID:               "location",
		Name:             "위치기반 서비스",
		Description:      "GPS 기반 위치 정보 수집 및 활용",
		Category:         CategoryAdvanced,
		NeedsLegalNotice: true,
		Tooltip:          "위치정보 보호법에 따른 별도 동의 및 관리책임자 명시가 필요합니다.",
		RelatedLaws:      []string{"위치정보보호법"},
	},
	{
		ID:          "global",
		Name:        "해외 사용자",
		Description: "글로벌 서비스 및 외국인 회원",
		Category:    CategoryAdvanced,
		Tooltip:     "해외 사용자 대상 서비스 시 준거법 및 중재 조항이 필요합니다.",
	},
	{
		ID:               "minor",
		Name:             "미성년자 대상",
		Description:      "만 14세 미만 이용 가능 서비스",
		Category:         CategoryAdvanced,
		NeedsLegalNotice: true,
		Tooltip:          "미성년자 이용 시 법정대리인 동의 및 청소년 보호 조항이 필요합니다.",
		RelatedLaws:      []string{"청소년보호법"},
	},
}

var featuresByID = func() map[string]TermsFeature {
	m := make(map[string]TermsFeature, len(TermsFeatures))
	for _, f := range TermsFeatures {
		m[f.ID] = f
	}
	return m
}()

// Feature returns the terms feature with the given id.
func Feature(id string) (TermsFeature, bool) {
	f, ok := featuresByID[id]
	return f, ok
}

// FeatureName returns the display name for a feature id, falling back
// to the id itself for unknown ids.
func FeatureName(id string) string {
	if f, ok := featuresByID[id]; ok {
		return f.Name
	}
	return id
}

// FeaturesByCategory returns the features of one category in display order.
func FeaturesByCategory(c Category) []TermsFeature {
	var out []TermsFeature
	for _, f := range TermsFeatures {
		if f.Category == c {
			out = append(out, f)
		}
	}
	return out
}

// DefaultFeaturesForServiceType returns the pre-suggested feature set
// for a terms service type. Unknown types get the basic set only.
func DefaultFeaturesForServiceType(t domain.TermsServiceType) []string {
	switch t {
	case domain.TermsTypeSaaS:
		return []string{"basic", "paid_service", "subscription"}
	case domain.TermsTypeCommerce:
		return []string{"basic", "paid_service", "ecommerce"}
	case domain.TermsTypeCommunity:
		return []string{"basic", "community_ugc"}
	case domain.TermsTypeApp:
		return []string{"basic", "paid_service", "location"}
	case domain.TermsTypeContent:
		return []string{"basic", "paid_service", "community_ugc"}
	case domain.TermsTypePlatform:
		return []string{"basic", "paid_service", "community_ugc", "subscription"}
	default:
		return []string{"basic"}
	}
}
