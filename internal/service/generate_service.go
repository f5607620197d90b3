package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"mailcraft/internal/apperror"
	"mailcraft/internal/intent"
	"mailcraft/internal/llm"
	"mailcraft/internal/model"
	"mailcraft/internal/prompt"
	"mailcraft/internal/repository"
	"mailcraft/pkg/logger"
	"mailcraft/pkg/metrics"
)

// Transcriber 语音转写协作方的窄接口
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// GenerateService 邮件生成流水线：
// 校验 → 推断 controls → 构造 prompt → 调模型 → 抽取 JSON → 校验输出。
// 每一步要么产出有效值，要么返回一个带码错误终止本次请求。
type GenerateService struct {
	inferencer  intent.Inferencer
	gateway     llm.Gateway
	transcriber Transcriber
	draftRepo   *repository.DraftRepository
	modelName   string
	logger      *zap.Logger
}

func NewGenerateService(
	inferencer intent.Inferencer,
	gateway llm.Gateway,
	transcriber Transcriber,
	draftRepo *repository.DraftRepository,
	modelName string,
	log *zap.Logger,
) *GenerateService {
	return &GenerateService{
		inferencer:  inferencer,
		gateway:     gateway,
		transcriber: transcriber,
		draftRepo:   draftRepo,
		modelName:   modelName,
		logger:      log,
	}
}

// Generate 执行完整流水线；userID 只用于落历史记录
func (s *GenerateService) Generate(ctx context.Context, userID int, req *model.EmailRequest) (*model.GeneratedEmail, error) {
	email, err := s.generate(ctx, req)
	if err != nil {
		metrics.IncrementEmailGenerated(apperror.CodeOf(err))
		return nil, err
	}
	metrics.IncrementEmailGenerated("success")

	// 历史记录是旁路，写失败不影响已经生成好的结果
	if s.draftRepo != nil {
		draft := &model.Draft{
			UserID:      userID,
			Description: req.Description,
			Subject:     email.Subject,
			Greeting:    email.Greeting,
			Body:        email.Body,
			Closing:     email.Closing,
			Model:       s.modelName,
		}
		if err := s.draftRepo.Insert(ctx, draft); err != nil {
			logger.WithTrace(ctx, s.logger).Warn("Failed to record draft history", zap.Error(err))
		}
	}

	return email, nil
}

func (s *GenerateService) generate(ctx context.Context, req *model.EmailRequest) (*model.GeneratedEmail, error) {
	log := logger.WithTrace(ctx, s.logger)

	// 1. 输入校验
	if err := ValidateDescription(req.Description); err != nil {
		return nil, err
	}

	// 2. 推断 controls；显式指定的语气优先于推断结果
	controls := s.inferencer.Infer(ctx, req.Description)
	if req.Tone != "" {
		controls.Tone = req.Tone
	}
	log.Info("Inferred controls",
		zap.String("intent", controls.Intent),
		zap.String("recipient", controls.Recipient),
		zap.String("confidence", controls.Confidence),
	)

	// 3. 构造 prompt
	sig := prompt.SignatureDetails{
		Name:       req.UserName,
		Role:       req.SenderType,
		Company:    req.UserCompany,
		University: req.UserUniversity,
		Title:      req.UserTitle,
		Email:      req.UserEmail,
	}
	promptText := prompt.Build(controls, req.Description, sig)

	// 4. 调用模型
	start := time.Now()
	raw, err := s.gateway.Generate(ctx, []llm.Message{
		{Role: llm.RoleUser, Content: promptText},
	})
	if err != nil {
		return nil, err
	}
	log.Info("LLM response received",
		zap.String("provider", s.gateway.Provider()),
		zap.Duration("latency", time.Since(start)),
	)

	// 5. 抽取 JSON
	parsed, err := llm.ExtractObject(raw)
	if err != nil {
		return nil, err
	}

	// 6. 输出校验
	email, err := ValidateOutput(parsed)
	if err != nil {
		return nil, err
	}
	log.Info("Output validation passed")

	return email, nil
}

// GenerateFromAudio 先转写音频，再用转写文本跑同一条流水线
func (s *GenerateService) GenerateFromAudio(ctx context.Context, userID int, audio []byte, filename string, req *model.EmailRequest) (*model.GeneratedEmail, error) {
	if s.transcriber == nil {
		return nil, apperror.New(apperror.CodeTranscriptionFailed, "transcription is not configured")
	}

	text, err := s.transcriber.Transcribe(ctx, audio, filename)
	if err != nil {
		logger.WithTrace(ctx, s.logger).Error("Transcription failed", zap.Error(err))
		return nil, err
	}

	req.Description = text
	return s.Generate(ctx, userID, req)
}
