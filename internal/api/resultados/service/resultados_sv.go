package resultadosService

import (
	"MonitoreoBackend/internal/api/resultados"
	"MonitoreoBackend/internal/entity"
	contextPkg "MonitoreoBackend/pkg/context"
	"MonitoreoBackend/pkg/log"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

func (s *resultadosService) ReceiveResults(ctx context.Context, payload interface{}) resultados.ReceiveResultsResponse {
	result := readIncomingResult(payload)

	s.log.WithFields(log.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"documento":  result.Documento,
		"ear":        floatField(result.EAR),
		"head_pose":  result.HeadPose,
		"mor":        floatField(result.MOR),
		"mejor":      result.Mejor,
		"keys":       strings.Join(result.Keys, ","),
	}).Infof("Datos recibidos: %s", describePayload(payload))

	return resultados.ReceiveResultsResponse{
		Mensaje: resultados.AckMessage,
	}
}

func readIncomingResult(payload interface{}) *entity.IncomingResult {
	result := &entity.IncomingResult{Raw: payload}

	data, ok := payload.(map[string]interface{})
	if !ok {
		return result
	}

	for key := range data {
		result.Keys = append(result.Keys, key)
	}
	sort.Strings(result.Keys)

	result.Documento = stringValue(data[resultados.FieldDocumento])
	result.EAR = floatValue(data[resultados.FieldEAR])
	result.HeadPose = data[resultados.FieldHeadPose]
	result.MOR = floatValue(data[resultados.FieldMOR])
	result.Mejor = stringValue(data[resultados.FieldMejor])

	return result
}

func stringValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case []string:
		if len(val) == 0 {
			return ""
		}
		return val[len(val)-1]
	default:
		return fmt.Sprint(val)
	}
}

// floatValue accepts JSON numbers and numeric form strings. Anything else,
// including numbers outside the float64 range, is treated as absent.
func floatValue(v interface{}) *float64 {
	switch val := v.(type) {
	case float64:
		return &val
	case json.Number:
		return floatValue(val.String())
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil
		}
		return &f
	case []string:
		if len(val) == 0 {
			return nil
		}
		return floatValue(val[len(val)-1])
	default:
		return nil
	}
}

func floatField(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

func describePayload(payload interface{}) string {
	raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(payload)
	if err != nil {
		return fmt.Sprintf("%v", payload)
	}
	return raw
}
