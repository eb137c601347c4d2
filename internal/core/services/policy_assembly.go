package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/lawkit-dev/lawkit-cli/internal/catalog"
	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
)

// policySection is a section before article numbers are assigned.
// Numbered sections get a sequential 제N조 prefix in emission order;
// header and footer stay untitled.
type policySection struct {
	id       string
	name     string
	content  string
	numbered bool
}

// AssemblePolicy builds a privacy policy from the wizard state.
// It is a pure function of its inputs; missing user input produces
// placeholder text, never an error. Item ids without a catalog entry
// are skipped.
func AssemblePolicy(info domain.ServiceInfo, selected []string, details map[string]domain.DetailInput, now time.Time) *domain.GeneratedDocument {
	items := make([]catalog.ProcessingItem, 0, len(selected))
	for _, id := range selected {
		if it, ok := catalog.Item(id); ok {
			items = append(items, it)
		}
	}

	raw := []policySection{
		{id: "header", content: policyHeader(info, now)},
		{id: "purpose", name: "개인정보의 처리 목적", content: policyPurpose(items, details), numbered: true},
		{id: "collection", name: "개인정보의 처리 및 보유 기간", content: policyCollection(items, details), numbered: true},
	}

	if out := policyOutsourcing(items, details); out != "" {
		raw = append(raw, policySection{id: "outsourcing", name: "개인정보 처리 위탁", content: out, numbered: true})
	}
	if tp := policyThirdParty(items, details); tp != "" {
		raw = append(raw, policySection{id: "thirdparty", name: "개인정보의 제3자 제공", content: tp, numbered: true})
	}
	if ov := policyOverseas(items, details); ov != "" {
		raw = append(raw, policySection{id: "overseas", name: "개인정보의 국외 이전", content: ov, numbered: true})
	}

	raw = append(raw,
		policySection{id: "rights", name: "정보주체와 법정대리인의 권리·의무 및 그 행사방법", content: policyRights(), numbered: true},
		policySection{id: "destruction", name: "개인정보의 파기", content: policyDestruction(), numbered: true},
		policySection{id: "security", name: "개인정보의 안전성 확보 조치", content: policySecurity(), numbered: true},
		policySection{id: "officer", name: "개인정보 보호책임자", content: policyOfficer(info), numbered: true},
		policySection{id: "remedies", name: "권익침해 구제방법", content: policyRemedies(), numbered: true},
		policySection{id: "footer", content: policyFooter(info, now)},
	)

	sections := make([]domain.DocumentSection, 0, len(raw))
	article := 0
	for i, s := range raw {
		title := ""
		if s.numbered {
			article++
			title = fmt.Sprintf("제%d조 (%s)", article, s.name)
		}
		sections = append(sections, domain.DocumentSection{
			ID:      s.id,
			Title:   title,
			Content: s.content,
			Order:   i + 1,
		})
	}

	return &domain.GeneratedDocument{
		Title:       info.ServiceName + " 개인정보처리방침",
		Content:     joinSections(sections),
		Sections:    sections,
		GeneratedAt: now,
		Version:     1,
	}
}

// joinSections rebuilds the document content from its sections.
func joinSections(sections []domain.DocumentSection) string {
	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = s.Content
	}
	return strings.Join(parts, "\n")
}

// koreanDate formats a date the way Korean documents state it.
func koreanDate(t time.Time) string {
	return fmt.Sprintf("%d. %d. %d.", t.Year(), int(t.Month()), t.Day())
}

func policyHeader(info domain.ServiceInfo, now time.Time) string {
	var b strings.Builder
	b.WriteString("<h1>개인정보처리방침</h1>\n")
	fmt.Fprintf(&b, `<p><strong>%s</strong>(이하 "회사")는 「개인정보 보호법」 등 관련 법령을 준수하며, 이용자의 개인정보를 보호하고 이와 관련한 고충을 신속하고 원활하게 처리할 수 있도록 하기 위하여 다음과 같이 개인정보처리방침을 수립·공개합니다.</p>`, info.CompanyName)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<p>본 개인정보처리방침은 <strong>%s</strong> 서비스(이하 "서비스")에 적용됩니다.</p>`, info.ServiceName)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<p class="meta-info">시행일: %s</p>`, koreanDate(now))
	return b.String()
}

func policyPurpose(items []catalog.ProcessingItem, details map[string]domain.DetailInput) string {
	var b strings.Builder
	b.WriteString(`<p>회사는 다음의 목적을 위하여 개인정보를 처리합니다. 처리하고 있는 개인정보는 다음의 목적 이외의 용도로는 이용되지 않으며, 이용 목적이 변경되는 경우에는 「개인정보 보호법」 제18조에 따라 별도의 동의를 받는 등 필요한 조치를 이행할 예정입니다.</p>`)
	for _, it := range items {
		purpose := details[it.ID].Purpose
		if purpose == "" {
			purpose = it.Name + " 관련 서비스 제공 및 관리"
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "<div class=\"purpose-item\">\n  <h4>%s</h4>\n  <p>%s</p>\n</div>", it.Name, purpose)
	}
	return b.String()
}

func policyCollection(items []catalog.ProcessingItem, details map[string]domain.DetailInput) string {
	var b strings.Builder
	b.WriteString(`<p>회사는 법령에 따른 개인정보 보유·이용기간 또는 정보주체로부터 개인정보를 수집 시에 동의받은 개인정보 보유·이용기간 내에서 개인정보를 처리·보유합니다.</p>`)
	b.WriteString("\n<h4>① 개인정보의 수집 항목 및 보유 기간</h4>\n")
	b.WriteString("<table class=\"privacy-table\">\n  <thead>\n    <tr>\n      <th>구분</th>\n      <th>수집 항목</th>\n      <th>보유 기간</th>\n    </tr>\n  </thead>\n  <tbody>\n")
	for _, it := range items {
		in := details[it.ID]
		collected := strings.Join(in.Items, ", ")
		if collected == "" {
			collected = in.CustomItems
		}
		if collected == "" {
			collected = "해당 서비스 관련 정보"
		}
		retention := catalog.RetentionLabel(in.RetentionPeriod, in.CustomRetention)
		fmt.Fprintf(&b, "    <tr>\n      <td>%s</td>\n      <td>%s</td>\n      <td>%s</td>\n    </tr>\n", it.Name, collected, retention)
	}
	b.WriteString("  </tbody>\n</table>")
	return b.String()
}

// policyOutsourcing returns the outsourcing section, or "" when no
// selected item declares outsourcing with at least one entry.
func policyOutsourcing(items []catalog.ProcessingItem, details map[string]domain.DetailInput) string {
	present := false
	for _, it := range items {
		in := details[it.ID]
		if in.HasOutsourcing && len(in.OutsourcingList) > 0 {
			present = true
			break
		}
	}
	if !present {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<p>회사는 원활한 개인정보 업무처리를 위하여 다음과 같이 개인정보 처리업무를 위탁하고 있습니다.</p>`)
	b.WriteString("\n<table class=\"privacy-table\">\n  <thead>\n    <tr>\n      <th>수탁업체</th>\n      <th>위탁업무 내용</th>\n      <th>위탁 국가</th>\n    </tr>\n  </thead>\n  <tbody>\n")
	for _, it := range items {
		in := details[it.ID]
		if !in.HasOutsourcing {
			continue
		}
		for _, o := range in.OutsourcingList {
			fmt.Fprintf(&b, "    <tr>\n      <td>%s</td>\n      <td>%s</td>\n      <td>%s</td>\n    </tr>\n", o.CompanyName, o.Task, o.Country)
		}
	}
	b.WriteString("  </tbody>\n</table>\n")
	b.WriteString(`<p>회사는 위탁계약 체결 시 「개인정보 보호법」 제26조에 따라 위탁업무 수행목적 외 개인정보 처리금지, 기술적·관리적 보호조치, 재위탁 제한, 수탁자에 대한 관리·감독, 손해배상 등 책임에 관한 사항을 계약서 등 문서에 명시하고, 수탁자가 개인정보를 안전하게 처리하는지를 감독하고 있습니다.</p>`)
	return b.String()
}

// policyThirdParty returns the third-party provision section, or ""
// when no selected item declares sharing with at least one entry.
func policyThirdParty(items []catalog.ProcessingItem, details map[string]domain.DetailInput) string {
	present := false
	for _, it := range items {
		in := details[it.ID]
		if in.HasThirdParty && len(in.ThirdPartyList) > 0 {
			present = true
			break
		}
	}
	if !present {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<p>회사는 정보주체의 개인정보를 개인정보의 처리 목적에서 명시한 범위 내에서만 처리하며, 정보주체의 동의, 법률의 특별한 규정 등 「개인정보 보호법」 제17조 및 제18조에 해당하는 경우에만 개인정보를 제3자에게 제공합니다.</p>`)
	b.WriteString("\n<table class=\"privacy-table\">\n  <thead>\n    <tr>\n      <th>제공받는 자</th>\n      <th>제공 목적</th>\n      <th>제공 항목</th>\n      <th>보유·이용기간</th>\n    </tr>\n  </thead>\n  <tbody>\n")
	for _, it := range items {
		in := details[it.ID]
		if !in.HasThirdParty {
			continue
		}
		for _, t := range in.ThirdPartyList {
			fmt.Fprintf(&b, "    <tr>\n      <td>%s</td>\n      <td>%s</td>\n      <td>%s</td>\n      <td>%s</td>\n    </tr>\n", t.Recipient, t.Purpose, t.Items, t.RetentionPeriod)
		}
	}
	b.WriteString("  </tbody>\n</table>")
	return b.String()
}

// policyOverseas returns the overseas-transfer section, or "" when no
// selected item declares a transfer with a filled record.
func policyOverseas(items []catalog.ProcessingItem, details map[string]domain.DetailInput) string {
	present := false
	for _, it := range items {
		in := details[it.ID]
		if in.HasOverseasTransfer && in.OverseasInfo != nil {
			present = true
			break
		}
	}
	if !present {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<p>회사는 이용자의 개인정보를 국외에 이전하고 있습니다.</p>`)
	for _, it := range items {
		in := details[it.ID]
		if !in.HasOverseasTransfer || in.OverseasInfo == nil {
			continue
		}
		info := in.OverseasInfo
		b.WriteString("\n<div class=\"overseas-item\">\n")
		fmt.Fprintf(&b, "  <p><strong>이전받는 자:</strong> %s</p>\n", info.Trustee)
		fmt.Fprintf(&b, "  <p><strong>이전 국가:</strong> %s</p>\n", info.Country)
		fmt.Fprintf(&b, "  <p><strong>이전 일시:</strong> %s</p>\n", info.TransferDate)
		fmt.Fprintf(&b, "  <p><strong>이전 방법:</strong> %s</p>\n", info.Method)
		fmt.Fprintf(&b, "  <p><strong>연락처:</strong> %s</p>\n", info.Contact)
		b.WriteString("</div>")
	}
	b.WriteString("\n<p>회사는 국외 이전 시 개인정보 보호법에서 요구하는 안전성 확보 조치를 준수합니다.</p>")
	return b.String()
}

func policyRights() string {
	return `<p>① 정보주체는 회사에 대해 언제든지 개인정보 열람·정정·삭제·처리정지 요구 등의 권리를 행사할 수 있습니다.</p>
<p>② 제1항에 따른 권리 행사는 회사에 대해 「개인정보 보호법」 시행령 제41조제1항에 따라 서면, 전자우편, 모사전송(FAX) 등을 통하여 하실 수 있으며 회사는 이에 대해 지체 없이 조치하겠습니다.</p>
<p>③ 제1항에 따른 권리 행사는 정보주체의 법정대리인이나 위임을 받은 자 등 대리인을 통하여 하실 수 있습니다. 이 경우 "개인정보 처리 방법에 관한 고시(제2020-7호)" 별지 제11호 서식에 따른 위임장을 제출하셔야 합니다.</p>
<p>④ 개인정보 열람 및 처리정지 요구는 「개인정보 보호법」 제35조 제4항, 제37조 제2항에 의하여 정보주체의 권리가 제한될 수 있습니다.</p>
<p>⑤ 개인정보의 정정 및 삭제 요구는 다른 법령에서 그 개인정보가 수집 대상으로 명시되어 있는 경우에는 그 삭제를 요구할 수 없습니다.</p>
<p>⑥ 회사는 정보주체 권리에 따른 열람 요구, 정정·삭제 요구, 처리정지 요구 시 열람 등을 요구한 자가 본인이거나 정당한 대리인인지를 확인합니다.</p>`
}

func policyDestruction() string {
	return `<p>① 회사는 개인정보 보유기간의 경과, 처리목적 달성 등 개인정보가 불필요하게 되었을 때에는 지체없이 해당 개인정보를 파기합니다.</p>
<p>② 정보주체로부터 동의받은 개인정보 보유기간이 경과하거나 처리목적이 달성되었음에도 불구하고 다른 법령에 따라 개인정보를 계속 보존하여야 하는 경우에는, 해당 개인정보를 별도의 데이터베이스(DB)로 옮기거나 보관장소를 달리하여 보존합니다.</p>
<p>③ 개인정보 파기의 절차 및 방법은 다음과 같습니다.</p>
<p><strong>1. 파기절차</strong><br>회사는 파기 사유가 발생한 개인정보를 선정하고, 회사의 개인정보 보호책임자의 승인을 받아 개인정보를 파기합니다.</p>
<p><strong>2. 파기방법</strong><br>전자적 파일 형태의 정보는 기록을 재생할 수 없는 기술적 방법을 사용합니다. 종이에 출력된 개인정보는 분쇄기로 분쇄하거나 소각을 통하여 파기합니다.</p>`
}

func policySecurity() string {
	return `<p>회사는 개인정보의 안전성 확보를 위해 다음과 같은 조치를 취하고 있습니다.</p>
<p><strong>1. 관리적 조치</strong>: 내부관리계획 수립·시행, 정기적 직원 교육 등</p>
<p><strong>2. 기술적 조치</strong>: 개인정보처리시스템 등의 접근권한 관리, 접근통제시스템 설치, 고유식별정보 등의 암호화, 보안프로그램 설치 등</p>
<p><strong>3. 물리적 조치</strong>: 전산실, 자료보관실 등의 접근통제 등</p>`
}

// placeholderUnset stands in for officer fields the user left empty.
const placeholderUnset = "미지정"

func policyOfficer(info domain.ServiceInfo) string {
	name := info.PrivacyOfficerName
	if name == "" {
		name = placeholderUnset
	}
	contact := info.PrivacyOfficerContact
	if contact == "" {
		contact = info.ContactEmail
	}
	if contact == "" {
		contact = placeholderUnset
	}

	var b strings.Builder
	b.WriteString(`<p>① 회사는 개인정보 처리에 관한 업무를 총괄해서 책임지고, 개인정보 처리와 관련한 정보주체의 불만처리 및 피해구제 등을 위하여 아래와 같이 개인정보 보호책임자를 지정하고 있습니다.</p>`)
	b.WriteString("\n<div class=\"officer-info\">\n  <p><strong>▶ 개인정보 보호책임자</strong></p>\n")
	fmt.Fprintf(&b, "  <p>성명: %s</p>\n", name)
	fmt.Fprintf(&b, "  <p>연락처: %s</p>\n", contact)
	b.WriteString("</div>\n")
	b.WriteString(`<p>② 정보주체는 회사의 서비스(또는 사업)를 이용하시면서 발생한 모든 개인정보 보호 관련 문의, 불만처리, 피해구제 등에 관한 사항을 개인정보 보호책임자 및 담당부서로 문의하실 수 있습니다. 회사는 정보주체의 문의에 대해 지체 없이 답변 및 처리해드릴 것입니다.</p>`)
	return b.String()
}

func policyRemedies() string {
	return `<p>정보주체는 개인정보침해로 인한 구제를 받기 위하여 개인정보분쟁조정위원회, 한국인터넷진흥원 개인정보침해신고센터 등에 분쟁해결이나 상담 등을 신청할 수 있습니다. 이 밖에 기타 개인정보침해의 신고, 상담에 대하여는 아래의 기관에 문의하시기 바랍니다.</p>
<p><strong>1. 개인정보분쟁조정위원회</strong>: (국번없이) 1833-6972 (www.kopico.go.kr)</p>
<p><strong>2. 개인정보침해신고센터</strong>: (국번없이) 118 (privacy.kisa.or.kr)</p>
<p><strong>3. 대검찰청</strong>: (국번없이) 1301 (www.spo.go.kr)</p>
<p><strong>4. 경찰청</strong>: (국번없이) 182 (ecrm.cyber.go.kr)</p>`
}

func policyFooter(info domain.ServiceInfo, now time.Time) string {
	var b strings.Builder
	b.WriteString("<div class=\"document-footer\">\n")
	fmt.Fprintf(&b, "  <p>본 개인정보처리방침은 %s부터 적용됩니다.</p>\n", koreanDate(now))
	fmt.Fprintf(&b, "  <p class=\"disclaimer\">※ 본 문서는 %s 서비스의 특성을 반영하여 생성되었으며, 법률 자문을 대체하지 않습니다. 최종 검토를 권장합니다.</p>\n", info.ServiceName)
	b.WriteString("</div>")
	return b.String()
}
