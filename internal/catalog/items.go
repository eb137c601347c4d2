// Package catalog holds the static catalogs the wizards select from:
// personal-data processing items for the privacy policy and service
// features for the terms of service, plus the clause templates built
// from them. All data is compile-time constant.
package catalog

import "github.com/lawkit-dev/lawkit-cli/internal/core/domain"

// Category splits the catalogs into the always-shown basic set and the
// advanced set shown only in advanced mode.
type Category string

const (
	CategoryBasic    Category = "basic"
	CategoryAdvanced Category = "advanced"
)

// ProcessingItem describes one personal-data processing activity the
// privacy wizard can select.
type ProcessingItem struct {
	// ID is the stable catalog identifier.
	ID string

	// Name is the Korean display name.
	Name string

	Description string

	Category Category

	// IsRecommended marks items pre-suggested for most services.
	IsRecommended bool

	// IsRequired marks items that nearly every service must declare.
	IsRequired bool

	// NeedsLegalNotice marks items that trigger extra statutory
	// disclosure duties.
	NeedsLegalNotice bool

	Tooltip string

	// DefaultPurpose seeds the detail record's purpose on selection.
	DefaultPurpose string

	// DefaultRetention seeds the detail record's retention choice.
	DefaultRetention domain.RetentionPeriod

	// ExampleItems are the selectable collected-data tags.
	ExampleItems []string
}

// ProcessingItems is the full privacy catalog in display order.
var ProcessingItems = []ProcessingItem{
	{
		ID:               "account_signup",
		Name:             "회원가입(이메일)",
		Description:      "이메일 기반 회원가입 및 계정 생성",
		Category:         CategoryBasic,
		IsRecommended:    true,
		IsRequired:       true,
		Tooltip:          "회원제 서비스라면 필수로 포함해야 하는 항목입니다.",
		DefaultPurpose:   "회원 식별 및 회원제 서비스 제공",
		DefaultRetention: domain.RetentionWithdrawal,
		ExampleItems:     []string{"이메일", "비밀번호", "닉네임"},
	},
	{
		ID:               "auth_session",
		Name:             "로그인/인증(세션/JWT)",
		Description:      "로그인 상태 유지 및 본인 확인",
		Category:         CategoryBasic,
		IsRecommended:    true,
		Tooltip:          "로그인 기능이 있다면 인증 정보 처리를 명시해야 합니다.",
		DefaultPurpose:   "로그인 상태 유지 및 본인 확인",
		DefaultRetention: domain.RetentionWithdrawal,
		ExampleItems:     []string{"이메일", "접속 토큰", "기기정보"},
	},
	{
		ID:               "payment_onetime",
		Name:             "결제(단건)",
		Description:      "유료 상품·서비스의 단건 결제",
		Category:         CategoryBasic,
		NeedsLegalNotice: true,
		Tooltip:          "전자상거래법상 거래기록은 5년간 보존해야 합니다.",
		DefaultPurpose:   "유료 서비스 결제 및 정산",
		DefaultRetention: domain.RetentionFiveYears,
		ExampleItems:     []string{"카드사명", "결제 승인번호", "결제 일시"},
	},
	{
		ID:               "payment_subscription",
		Name:             "구독(자동결제)",
		Description:      "정기결제 및 구독 관리",
		Category:         CategoryBasic,
		NeedsLegalNotice: true,
		Tooltip:          "자동결제 수단 정보의 보관 근거를 명시해야 합니다.",
		DefaultPurpose:   "정기결제 처리 및 구독 관리",
		DefaultRetention: domain.RetentionFiveYears,
		ExampleItems:     []string{"카드사명", "빌링키", "결제 일시"},
	},
	{
		ID:               "marketing_email",
		Name:             "마케팅(이메일)",
		Description:      "이메일을 통한 광고성 정보 발송",
		Category:         CategoryBasic,
		Tooltip:          "광고성 정보 전송은 별도의 수신 동의가 필요합니다.",
		DefaultPurpose:   "신규 서비스 및 이벤트 정보 안내",
		DefaultRetention: domain.RetentionWithdrawal,
		ExampleItems:     []string{"이메일", "수신 동의 여부"},
	},
	{
		ID:               "marketing_push",
		Name:             "마케팅(푸시)",
		Description:      "앱 푸시를 통한 광고성 정보 발송",
		Category:         CategoryBasic,
		Tooltip:          "푸시 알림 수신 동의 내역을 관리해야 합니다.",
		DefaultPurpose:   "앱 푸시를 통한 맞춤형 정보 제공",
		DefaultRetention: domain.RetentionWithdrawal,
		ExampleItems:     []string{"기기 토큰", "수신 동의 여부"},
	},
	{
		ID:               "support_inquiry",
		Name:             "고객센터/문의",
		Description:      "고객 문의 접수 및 처리",
		Category:         CategoryBasic,
		IsRecommended:    true,
		Tooltip:          "소비자 불만·분쟁 처리 기록은 3년간 보존해야 합니다.",
		DefaultPurpose:   "문의 접수 및 처리 결과 회신",
		DefaultRetention: domain.RetentionThreeYears,
		ExampleItems:     []string{"이메일", "문의 내용", "연락처"},
	},
	{
		ID:               "analytics_cookie",
		Name:             "분석/로그(쿠키/접속기록)",
		Description:      "서비스 이용 통계 및 접속 기록 분석",
		Category:         CategoryBasic,
		IsRecommended:    true,
		Tooltip:          "통신비밀보호법상 접속기록은 3개월 이상 보존합니다.",
		DefaultPurpose:   "서비스 이용 통계 분석 및 품질 개선",
		DefaultRetention: domain.RetentionOneYear,
		ExampleItems:     []string{"쿠키", "접속 IP", "접속 기록"},
	},
	{
		ID:               "auth_social",
		Name:             "소셜 로그인",
		Description:      "외부 계정 연동을 통한 간편 로그인",
		Category:         CategoryBasic,
		Tooltip:          "소셜 플랫폼으로부터 제공받는 항목을 명시해야 합니다.",
		DefaultPurpose:   "외부 계정을 통한 간편 로그인 제공",
		DefaultRetention: domain.RetentionWithdrawal,
		ExampleItems:     []string{"소셜 계정 식별자", "이메일", "프로필 이름"},
	},
	{
		ID:               "payment_refund",
		Name:             "환불/분쟁 처리",
		Description:      "환불 처리 및 결제 분쟁 대응",
		Category:         CategoryBasic,
		NeedsLegalNotice: true,
		Tooltip:          "대금결제·환불 기록은 전자상거래법상 5년 보존 대상입니다.",
		DefaultPurpose:   "환불 처리 및 결제 분쟁 대응",
		DefaultRetention: domain.RetentionThreeYears,
		ExampleItems:     []string{"결제 내역", "환불 계좌", "연락처"},
	},
	{
		ID:               "account_dormant",
		Name:             "휴면계정(비활성 관리)",
		Description:      "장기 미이용 계정의 분리 보관",
		Category:         CategoryBasic,
		Tooltip:          "1년 이상 미이용 회원의 개인정보는 분리 보관 대상입니다.",
		DefaultPurpose:   "장기 미이용 회원의 개인정보 분리 보관",
		DefaultRetention: domain.RetentionOneYear,
		ExampleItems:     []string{"이메일", "최종 접속일"},
	},
	{
		ID:               "auth_phone",
		Name:             "휴대전화 본인인증",
		Description:      "통신사 본인확인 서비스 연동",
		Category:         CategoryAdvanced,
		NeedsLegalNotice: true,
		Tooltip:          "본인확인기관을 통한 인증 시 CI/DI 처리 근거가 필요합니다.",
		DefaultPurpose:   "본인 확인 및 중복 가입 방지",
		DefaultRetention: domain.RetentionWithdrawal,
		ExampleItems:     []string{"휴대전화번호", "생년월일", "통신사", "CI/DI"},
	},
	{
		ID:               "delivery_shipping",
		Name:             "배송/물류",
		Description:      "상품 배송 및 배송 현황 안내",
		Category:         CategoryAdvanced,
		NeedsLegalNotice: true,
		Tooltip:          "배송을 위한 수령인 정보 처리와 위탁 관계를 명시해야 합니다.",
		DefaultPurpose:   "상품 배송 및 배송 현황 안내",
		DefaultRetention: domain.RetentionFiveYears,
		ExampleItems:     []string{"수령인 성명", "주소", "휴대전화번호"},
	},
	{
		ID:               "location_gps",
		Name:             "위치기반 서비스",
		Description:      "GPS 기반 위치 정보 수집 및 활용",
		Category:         CategoryAdvanced,
		NeedsLegalNotice: true,
		Tooltip:          "위치정보법에 따른 별도 동의와 관리책임자 지정이 필요합니다.",
		DefaultPurpose:   "위치 기반 맞춤형 서비스 제공",
		DefaultRetention: domain.RetentionWithdrawal,
		ExampleItems:     []string{"GPS 좌표", "접속 위치"},
	},
	{
		ID:               "community_content",
		Name:             "커뮤니티/게시물 업로드",
		Description:      "게시물·댓글 작성 및 커뮤니티 운영",
		Category:         CategoryAdvanced,
		Tooltip:          "게시물에 포함된 개인정보의 처리 기준을 명시해야 합니다.",
		DefaultPurpose:   "게시물 작성 및 커뮤니티 운영",
		DefaultRetention: domain.RetentionWithdrawal,
		ExampleItems:     []string{"닉네임", "게시물 내용", "작성 일시"},
	},
	{
		ID:               "marketing_adpixel",
		Name:             "광고/리타게팅 픽셀",
		Description:      "광고 플랫폼 픽셀을 통한 행태정보 수집",
		Category:         CategoryAdvanced,
		NeedsLegalNotice: true,
		Tooltip:          "행태정보 수집·이용은 별도 고지 대상입니다.",
		DefaultPurpose:   "맞춤형 광고 제공 및 광고 성과 측정",
		DefaultRetention: domain.RetentionOneYear,
		ExampleItems:     []string{"광고 식별자", "쿠키", "행태정보"},
	},
	{
		ID:               "event_promotion",
		Name:             "이벤트/경품 응모",
		Description:      "이벤트 응모 접수 및 경품 발송",
		Category:         CategoryAdvanced,
		Tooltip:          "경품 발송을 위한 배송 정보 수집 범위를 명시해야 합니다.",
		DefaultPurpose:   "이벤트 응모 확인 및 경품 발송",
		DefaultRetention: domain.RetentionThreeYears,
		ExampleItems:     []string{"성명", "연락처", "주소"},
	},
	{
		ID:               "survey_feedback",
		Name:             "설문조사/피드백 수집",
		Description:      "서비스 개선을 위한 의견 수렴",
		Category:         CategoryAdvanced,
		Tooltip:          "설문 응답과 계정 정보의 결합 여부를 명시해야 합니다.",
		DefaultPurpose:   "서비스 개선을 위한 의견 수렴",
		DefaultRetention: domain.RetentionOneYear,
		ExampleItems:     []string{"이메일", "설문 응답 내용"},
	},
	{
		ID:               "admin_operator",
		Name:             "관리자/운영자 계정",
		Description:      "내부 관리자 계정 운영",
		Category:         CategoryAdvanced,
		Tooltip:          "내부 관리자의 접근 권한 및 접근 기록 관리 기준입니다.",
		DefaultPurpose:   "관리자 계정 운영 및 접근 통제",
		DefaultRetention: domain.RetentionWithdrawal,
		ExampleItems:     []string{"성명", "계정 ID", "접근 기록"},
	},
}

var itemsByID = func() map[string]ProcessingItem {
	m := make(map[string]ProcessingItem, len(ProcessingItems))
	for _, it := range ProcessingItems {
		m[it.ID] = it
	}
	return m
}()

// Item returns the processing item with the given id.
func Item(id string) (ProcessingItem, bool) {
	it, ok := itemsByID[id]
	return it, ok
}

// ItemName returns the Korean display name for an item id, falling back
// to the id itself for unknown ids.
func ItemName(id string) string {
	if it, ok := itemsByID[id]; ok {
		return it.Name
	}
	return id
}

// ItemsByCategory returns the items of one category in display order.
func ItemsByCategory(c Category) []ProcessingItem {
	var out []ProcessingItem
	for _, it := range ProcessingItems {
		if it.Category == c {
			out = append(out, it)
		}
	}
	return out
}

// DefaultItemsForServiceType returns the pre-suggested selection for a
// service type. Unknown types get the required baseline only.
func DefaultItemsForServiceType(t domain.ServiceType) []string {
	switch t {
	case domain.ServiceTypeSaaS:
		return []string{"account_signup", "auth_session", "payment_subscription", "analytics_cookie"}
	case domain.ServiceTypeCommerce:
		return []string{"account_signup", "auth_session", "payment_onetime", "payment_refund", "delivery_shipping"}
	case domain.ServiceTypeCommunity:
		return []string{"account_signup", "auth_session", "community_content", "analytics_cookie"}
	case domain.ServiceTypeApp:
		return []string{"account_signup", "auth_session", "marketing_push", "analytics_cookie"}
	case domain.ServiceTypeOffline:
		return []string{"account_signup", "support_inquiry"}
	default:
		return []string{"account_signup"}
	}
}

// RetentionOption is one selectable retention period with its label.
type RetentionOption struct {
	Value domain.RetentionPeriod
	Label string
}

// RetentionOptions lists the retention choices in display order.
var RetentionOptions = []RetentionOption{
	{domain.RetentionWithdrawal, "회원탈퇴 시까지"},
	{domain.RetentionOneYear, "1년"},
	{domain.RetentionThreeYears, "3년"},
	{domain.RetentionFiveYears, "5년"},
	{domain.RetentionCustom, "직접 입력"},
}

// RetentionLabel renders a retention choice as display text. The custom
// choice uses the free-text value, or the generic label when empty.
// Unknown values pass through unchanged.
func RetentionLabel(value domain.RetentionPeriod, custom string) string {
	switch value {
	case domain.RetentionWithdrawal:
		return "회원탈퇴 시까지"
	case domain.RetentionOneYear:
		return "1년"
	case domain.RetentionThreeYears:
		return "3년"
	case domain.RetentionFiveYears:
		return "5년"
	case domain.RetentionCustom:
		if custom != "" {
			return custom
		}
		return "직접 입력"
	default:
		return string(value)
	}
}
