package llm

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"mailcraft/internal/apperror"
)

// ExtractObject 从模型回复中定位并解析第一个大括号包围的 JSON 对象。
// 模型经常在 JSON 前后附带客套话，所以取第一个 "{" 到最后一个 "}" 的
// 贪婪切片；切片解析失败时先尝试修复（单引号、尾逗号之类）再放弃。
func ExtractObject(raw string) (map[string]any, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, apperror.New(apperror.CodeLLMInvalidOutput, "no JSON object found in model reply")
	}

	region := raw[start : end+1]

	obj, err := decodeObject(region)
	if err == nil {
		return obj, nil
	}
	var se *apperror.ServiceError
	if errors.As(err, &se) {
		// 解析成功但不是对象，修复也救不回来
		return nil, err
	}

	fixed, repairErr := jsonrepair.JSONRepair(region)
	if repairErr != nil {
		return nil, apperror.Wrap(apperror.CodeLLMInvalidJSON, "model reply is not valid JSON", err)
	}

	obj, err = decodeObject(fixed)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeLLMInvalidJSON, "model reply is not a JSON object", err)
	}
	return obj, nil
}

func decodeObject(s string) (map[string]any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		// 数组或标量也算非法，契约要求键值对象
		return nil, apperror.New(apperror.CodeLLMInvalidJSON, "model reply parsed to a non-object value")
	}
	return obj, nil
}
