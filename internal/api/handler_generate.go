package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"mailcraft/internal/apperror"
	"mailcraft/internal/model"
	"mailcraft/internal/service"
)

// 音频文件大小上限，防止内存被一个上传撑爆
const maxAudioBytes = 25 << 20 // 25 MiB

type GenerateHandler struct {
	generateService *service.GenerateService
}

func NewGenerateHandler(generateService *service.GenerateService) *GenerateHandler {
	return &GenerateHandler{
		generateService: generateService,
	}
}

// 错误码到 HTTP 状态码的映射；调用方按 code 分支，status 只是传输层语义
func statusForCode(code string) int {
	switch code {
	case apperror.CodeInvalidInput:
		return http.StatusBadRequest
	case apperror.CodeLLMInvalidOutput, apperror.CodeLLMInvalidJSON, apperror.CodeOutputInvalid:
		return http.StatusUnprocessableEntity
	case apperror.CodeLLMUnavailable, apperror.CodeLLMEmptyResponse, apperror.CodeTranscriptionFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(c *gin.Context, err error) {
	code := apperror.CodeOf(err)
	c.JSON(statusForCode(code), gin.H{
		"code":    code,
		"message": apperror.MessageOf(err),
	})
}

// Generate handles POST /generate
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req model.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    apperror.CodeInvalidInput,
			"message": "invalid request body",
		})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	email, err := h.generateService.Generate(c.Request.Context(), userID.(int), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, email)
}

// GenerateFromVoice handles POST /generate/voice (multipart)
// 音频字段名为 audio，其余请求字段走普通表单字段
func (h *GenerateHandler) GenerateFromVoice(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    apperror.CodeInvalidInput,
			"message": "missing audio file",
		})
		return
	}
	if fileHeader.Size > maxAudioBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    apperror.CodeInvalidInput,
			"message": "audio file too large",
		})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    apperror.CodeInvalidInput,
			"message": "unreadable audio file",
		})
		return
	}
	defer f.Close()

	audio, err := io.ReadAll(io.LimitReader(f, maxAudioBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    apperror.CodeInvalidInput,
			"message": "unreadable audio file",
		})
		return
	}

	req := model.EmailRequest{
		UserName:       c.PostForm("user_name"),
		UserEmail:      c.PostForm("user_email"),
		Tone:           c.PostForm("tone"),
		SenderType:     c.PostForm("sender_type"),
		UserCompany:    c.PostForm("user_company"),
		UserUniversity: c.PostForm("user_university"),
		UserTitle:      c.PostForm("user_title"),
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	email, err := h.generateService.GenerateFromAudio(c.Request.Context(), userID.(int), audio, fileHeader.Filename, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, email)
}
