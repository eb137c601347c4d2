package services

import (
	"strings"
	"time"

	"github.com/lawkit-dev/lawkit-cli/internal/catalog"
	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
)

// substituteTemplateVars fills the template placeholders with service
// facts, using documented fallbacks for empty fields.
func substituteTemplateVars(content string, info domain.TermsServiceInfo) string {
	company := info.CompanyName
	if company == "" {
		company = "회사"
	}
	service := info.ServiceName
	if service == "" {
		service = "서비스"
	}
	rep := info.Representative
	if rep == "" {
		rep = "대표"
	}
	email := info.ContactEmail
	if email == "" {
		email = "contact@example.com"
	}

	r := strings.NewReplacer(
		"{companyName}", company,
		"{serviceName}", service,
		"{representative}", rep,
		"{contactEmail}", email,
	)
	return r.Replace(content)
}

// AssembleTerms builds a terms-of-service document from the wizard
// state. It is a pure function of its inputs and always succeeds; the
// terms document is assembled locally only.
func AssembleTerms(info domain.TermsServiceInfo, selected []string, now time.Time) *domain.GeneratedTerms {
	has := func(id string) bool {
		for _, s := range selected {
			if s == id {
				return true
			}
		}
		return false
	}

	var chapters []domain.TermsChapter
	article := 0
	next := func() int {
		article++
		return article
	}

	// Base chapters 1-6 always come from the static template.
	// Conditional clauses slot into chapters 4 and 6; feature-specific
	// chapters 7-9 follow.
	for _, tc := range catalog.BasicTermsChapters {
		ch := domain.TermsChapter{
			ID:            tc.ID,
			ChapterNumber: len(chapters) + 1,
			Title:         tc.Title,
		}
		for _, ta := range tc.Articles {
			ch.Articles = append(ch.Articles, domain.TermsArticle{
				ID:            ta.ID,
				ArticleNumber: next(),
				Title:         ta.Title,
				Content:       substituteTemplateVars(ta.Content, info),
			})
		}

		if tc.ID == "chapter4" && has("community_ugc") {
			ch.Articles = append(ch.Articles,
				domain.TermsArticle{
					ID:            "ch4-art-ugc",
					ArticleNumber: next(),
					Title:         "제10조의2 (게시물의 라이선스)",
					Content: `① 회원은 서비스 내에 게시물을 게시함으로써 회사에게 다음과 같은 권리를 부여합니다.
1. 게시물을 복제, 배포, 전시, 전송할 수 있는 권리
2. 게시물을 검색 노출, 홍보, 마케팅에 활용할 수 있는 권리
② 회사는 회원의 개별 동의 없이 게시물을 상업적으로 이용하지 않습니다.
③ 회원이 게시물을 삭제하는 경우, 회사는 관련 법령에 따라 보관이 필요한 경우를 제외하고 해당 게시물을 삭제합니다.`,
				},
				domain.TermsArticle{
					ID:            "ch4-art-report",
					ArticleNumber: next(),
					Title:         "제10조의3 (신고 및 삭제 정책)",
					Content: `① 회원은 타인의 게시물이 권리를 침해하거나 부적절한 경우 신고할 수 있습니다.
② 회사는 신고 접수 후 검토를 거쳐 해당 게시물을 삭제하거나 수정을 요청할 수 있습니다.
③ 회사는 다음 각 호에 해당하는 회원의 계정을 제한하거나 삭제할 수 있습니다.
1. 반복적으로 금지행위를 하는 경우
2. 타인의 권리를 침해하는 게시물을 다수 게시한 경우
3. 기타 서비스 운영을 방해하는 행위를 한 경우`,
				},
			)
		}

		if tc.ID == "chapter6" && has("ai_feature") {
			ch.Articles = append(ch.Articles, domain.TermsArticle{
				ID:            "ch6-art-ai",
				ArticleNumber: next(),
				Title:         "제12조의2 (AI 서비스 관련 특약)",
				Content: `① 회사가 제공하는 AI 서비스는 참고용이며, AI가 생성한 결과물의 정확성, 적법성, 유용성 등을 보장하지 않습니다.
② 회원은 AI 서비스를 이용하여 얻은 결과물을 자신의 판단과 책임 하에 사용하여야 합니다.
③ 회사는 AI 서비스 이용 과정에서 수집된 데이터를 서비스 개선 및 학습 목적으로 활용할 수 있습니다.
④ AI 서비스는 자동화된 시스템으로 운영되며, 특정 결과물에 대한 회사의 의도를 반영하지 않습니다.`,
			})
		}

		chapters = append(chapters, ch)
	}

	if has("paid_service") || has("ecommerce") {
		ch := domain.TermsChapter{
			ID:            "chapter7",
			ChapterNumber: 7,
			Title:         "제7장 유료서비스",
		}
		ch.Articles = append(ch.Articles,
			domain.TermsArticle{
				ID:            "ch7-art1",
				ArticleNumber: next(),
				Title:         "제14조 (유료서비스의 내용)",
				Content: `① 회사가 제공하는 유료서비스의 내용은 서비스 내 별도 안내 페이지에 게시합니다.
② 유료서비스의 이용 요금, 결제 방식, 이용 기간 등은 서비스별로 다를 수 있습니다.`,
			},
			domain.TermsArticle{
				ID:            "ch7-art2",
				ArticleNumber: next(),
				Title:         "제15조 (결제)",
				Content: `① 회원은 회사가 정한 방법(신용카드, 계좌이체, 휴대전화 결제 등)을 통해 유료서비스 요금을 결제합니다.
② 미성년자가 유료서비스를 이용하려는 경우 법정대리인의 동의를 받아야 합니다.
③ 결제 과정에서 발생하는 오류로 인한 손해에 대해 회사는 고의 또는 중대한 과실이 없는 한 책임을 지지 않습니다.`,
			},
			domain.TermsArticle{
				ID:            "ch7-art3",
				ArticleNumber: next(),
				Title:         "제16조 (청약철회 및 환불)",
				Content: `① 회원은 유료서비스 구매일로부터 7일 이내에 청약을 철회할 수 있습니다. 다만, 다음 각 호의 경우는 예외로 합니다.
1. 즉시 사용이 시작되는 서비스
2. 추가 혜택이 제공되는 서비스에서 추가 혜택을 사용한 경우
3. 개봉 또는 사용으로 인해 재판매가 곤란한 경우
② 회사는 청약철회 요청을 접수한 날로부터 3영업일 이내에 환불을 처리합니다.
③ 환불 금액은 실제 결제 금액에서 이용 기간에 해당하는 금액과 수수료를 차감하여 산정합니다.`,
			},
		)

		if has("subscription") {
			ch.Articles = append(ch.Articles, domain.TermsArticle{
				ID:            "ch7-art4",
				ArticleNumber: next(),
				Title:         "제17조 (정기결제 및 자동 갱신)",
				Content: `① 구독 서비스는 매 결제 주기가 종료되는 시점에 자동으로 갱신됩니다.
② 회원은 갱신일 전까지 서비스 내 설정에서 자동 갱신을 해지할 수 있습니다.
③ 회사는 요금 변경 시 변경 적용일 30일 전에 회원에게 통지합니다.
④ 회원이 요금 변경에 동의하지 않는 경우 변경 적용일 전까지 이용계약을 해지할 수 있습니다.`,
			})
		}

		if has("ecommerce") {
			ch.Articles = append(ch.Articles,
				domain.TermsArticle{
					ID:            "ch7-art5",
					ArticleNumber: next(),
					Title:         "제18조 (재화의 배송)",
					Content: `① 회사는 회원이 주문한 재화를 결제 완료일로부터 3~7일 이내에 배송합니다. 단, 천재지변 등 불가항력적인 사유가 있는 경우는 예외로 합니다.
② 배송 지연 시 회사는 회원에게 지체 없이 통지하고 적절한 보상을 제공합니다.`,
				},
				domain.TermsArticle{
					ID:            "ch7-art6",
					ArticleNumber: next(),
					Title:         "제19조 (교환 및 반품)",
					Content: `① 회원은 재화를 수령한 날로부터 7일 이내에 교환 또는 반품을 신청할 수 있습니다.
② 다음 각 호의 경우 교환 및 반품이 제한될 수 있습니다.
1. 회원의 책임 있는 사유로 재화가 멸실 또는 훼손된 경우
2. 포장을 개봉하여 재판매가 곤란한 경우
3. 시간이 지나 다시 판매하기 곤란할 정도로 재화의 가치가 현저히 감소한 경우`,
				},
			)
		}

		chapters = append(chapters, ch)
	}

	if has("location") {
		chapters = append(chapters, domain.TermsChapter{
			ID:            "chapter8",
			ChapterNumber: 8,
			Title:         "제8장 위치기반서비스",
			Articles: []domain.TermsArticle{
				{
					ID:            "ch8-art1",
					ArticleNumber: next(),
					Title:         "제20조 (위치정보의 수집 및 이용)",
					Content: `① 회사는 회원의 위치정보를 수집·이용하기 위하여 사전에 동의를 받습니다.
② 위치정보는 서비스 제공 목적에만 사용되며, 회원이 동의를 철회하면 즉시 수집을 중단하고 관련 데이터를 삭제합니다.
③ 회사는 위치정보의 보호를 위하여 위치정보관리책임자를 지정하고 있습니다.`,
				},
				{
					ID:            "ch8-art2",
					ArticleNumber: next(),
					Title:         "제21조 (위치정보관리책임자)",
					Content: substituteTemplateVars(`① 회사의 위치정보관리책임자는 다음과 같습니다.
- 성명: {representative}
- 연락처: {contactEmail}
② 회원은 위치정보와 관련된 문의사항을 위 연락처로 문의할 수 있습니다.`, info),
				},
			},
		})
	}

	if has("global") || has("minor") {
		ch := domain.TermsChapter{
			ID:            "chapter9",
			ChapterNumber: 9,
			Title:         "제9장 기타",
		}
		if has("global") {
			ch.Articles = append(ch.Articles, domain.TermsArticle{
				ID:            "ch9-art1",
				ArticleNumber: next(),
				Title:         "제22조 (국제 분쟁)",
				Content: `① 이 약관은 대한민국 법에 따라 규율되고 해석됩니다.
② 회사와 회원 간에 발생한 분쟁은 상호 협의하여 해결하며, 협의가 이루어지지 않는 경우 대한민국 법원의 관할에 따릅니다.
③ 해외에 거주하는 회원의 경우, 회사는 해당 국가의 법률을 준수하여 서비스를 제공합니다.`,
			})
		}
		if has("minor") {
			ch.Articles = append(ch.Articles, domain.TermsArticle{
				ID:            "ch9-art2",
				ArticleNumber: next(),
				Title:         "제23조 (미성년자 이용)",
				Content: `① 만 14세 미만의 아동은 법정대리인의 동의를 받은 경우에만 서비스를 이용할 수 있습니다.
② 법정대리인은 아동의 개인정보에 대한 열람, 정정, 삭제를 요청할 수 있습니다.
③ 회사는 청소년 보호를 위하여 연령 확인 절차를 진행할 수 있습니다.`,
			})
		}
		chapters = append(chapters, ch)
	}

	return &domain.GeneratedTerms{
		Title:       info.ServiceName + " 서비스 이용약관",
		Content:     joinChapters(chapters),
		Chapters:    chapters,
		GeneratedAt: now,
		Version:     1,
	}
}

// joinChapters rebuilds the document text from its chapters.
func joinChapters(chapters []domain.TermsChapter) string {
	parts := make([]string, 0, len(chapters))
	for _, ch := range chapters {
		var b strings.Builder
		b.WriteString(ch.Title)
		for _, art := range ch.Articles {
			b.WriteString("\n\n")
			b.WriteString(art.Title)
			b.WriteString("\n\n")
			b.WriteString(art.Content)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n")
}
