// Package prompt renders the single instruction block sent to the model.
// Pure string construction, no I/O.
package prompt

import (
	"fmt"
	"strings"

	"mailcraft/internal/model"
)

// SubjectMaxLength 写进指令文本，也被输出校验强制执行，两边必须一致
const SubjectMaxLength = 150

// SignatureDetails 用户签名信息；缺失的字段直接省略，不用占位符顶替
type SignatureDetails struct {
	Name       string
	Role       string // model.Sender* 枚举之一
	Company    string
	University string
	Title      string
	Email      string
}

// BuildSignatureBlock 确定性地构造签名块：
// 姓名一行，随后按角色给一行所属关系，最后是邮箱（如果提供）。
func BuildSignatureBlock(sig SignatureDetails) string {
	lines := []string{}
	if sig.Name != "" {
		lines = append(lines, sig.Name)
	}

	switch sig.Role {
	case model.SenderStudent:
		if sig.University != "" {
			lines = append(lines, "Student, "+sig.University)
		}
	case model.SenderProfessional:
		if sig.Company != "" {
			title := sig.Title
			if title == "" {
				title = "Employee"
			}
			lines = append(lines, title+", "+sig.Company)
		}
	case model.SenderBusiness:
		if sig.Company != "" {
			lines = append(lines, "Owner, "+sig.Company)
		}
	}

	if sig.Email != "" {
		lines = append(lines, sig.Email)
	}

	return strings.Join(lines, "\n")
}

// Build 把推断出的 controls、用户描述和签名信息组装成一条完整指令
func Build(controls model.Controls, description string, sig SignatureDetails) string {
	var guidance string
	if controls.Confidence == "high" {
		guidance = "Write the email strictly according to the sender, recipient, and intent provided."
	} else {
		guidance = "The request is ambiguous. Write a neutral, professional email. " +
			"Do not assume authority, deadlines, amounts, or sensitive details."
	}

	var b strings.Builder

	b.WriteString("You are a professional email writing assistant.\n\n")

	b.WriteString("CONTEXT:\n")
	fmt.Fprintf(&b, "Sender role: %s\n", controls.Sender)
	fmt.Fprintf(&b, "Recipient role: %s\n", controls.Recipient)
	fmt.Fprintf(&b, "Intent: %s\n\n", controls.Intent)

	b.WriteString("TASK:\n")
	fmt.Fprintf(&b, "Write a %s and %s email.\n\n", controls.Length, controls.Tone)

	b.WriteString("GUIDANCE:\n")
	b.WriteString(guidance)
	b.WriteString("\n\n")

	b.WriteString("RULES:\n")
	b.WriteString("- Output ONLY a raw JSON object, no markdown code fences, no explanation\n")
	b.WriteString("- The JSON object must have exactly four string keys: subject, greeting, body, closing\n")
	fmt.Fprintf(&b, "- The subject must be at most %d characters\n", SubjectMaxLength)
	b.WriteString("- Do NOT invent facts, dates, amounts, names, or authority\n")
	b.WriteString("- If the user does not provide invoice numbers, dates, amounts, or attachments, " +
		"do NOT mention them even as placeholders\n")
	b.WriteString("- Never write bracketed placeholders such as [Name] or [Date]\n")
	b.WriteString("- Use proper grammar, punctuation, and formatting\n")

	if block := BuildSignatureBlock(sig); block != "" {
		b.WriteString("- End the closing with a professional sign-off followed by exactly this signature block:\n")
		b.WriteString(block)
		b.WriteString("\n")
	} else {
		b.WriteString("- End the closing with a professional sign-off\n")
	}

	b.WriteString("\nJSON FORMAT:\n")
	b.WriteString("{\n  \"subject\": \"\",\n  \"greeting\": \"\",\n  \"body\": \"\",\n  \"closing\": \"\"\n}\n")

	b.WriteString("\nUSER REQUEST:\n")
	b.WriteString(description)
	b.WriteString("\n")

	return b.String()
}
