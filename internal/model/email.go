package model

import "time"

// 发件人类别枚举
const (
	SenderProfessional = "professional"
	SenderStudent      = "student"
	SenderBusiness     = "business"
	SenderOther        = "other"
)

// EmailRequest 一次生成请求的全部输入，构造后不再修改
type EmailRequest struct {
	Description    string `json:"description"`
	UserName       string `json:"user_name"`
	UserEmail      string `json:"user_email,omitempty"`
	Tone           string `json:"tone,omitempty"`
	SenderType     string `json:"sender_type"`
	UserCompany    string `json:"user_company,omitempty"`
	UserUniversity string `json:"user_university,omitempty"`
	UserTitle      string `json:"user_title,omitempty"`
}

// Controls 从描述推断出的写作配置，只被 prompt 构造消费
type Controls struct {
	Sender     string
	Recipient  string
	Intent     string
	Tone       string
	Length     string
	Confidence string // "low" 或 "high"
}

// GeneratedEmail 校验通过后的最终产物
type GeneratedEmail struct {
	Subject  string `json:"subject"`
	Greeting string `json:"greeting"`
	Body     string `json:"body"`
	Closing  string `json:"closing"`
}

// Draft 生成历史记录（写库用）
type Draft struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Description string    `json:"description"`
	Subject     string    `json:"subject"`
	Greeting    string    `json:"greeting"`
	Body        string    `json:"body"`
	Closing     string    `json:"closing"`
	Model       string    `json:"model"`
	CreatedAt   time.Time `json:"created_at"`
}
