package resultadosService

import (
	"MonitoreoBackend/internal/api/resultados"
	"context"

	"github.com/sirupsen/logrus"
)

type IResultadosService interface {
	ReceiveResults(ctx context.Context, payload interface{}) resultados.ReceiveResultsResponse
}

type resultadosService struct {
	log *logrus.Logger
}

func NewResultadosService(log *logrus.Logger) IResultadosService {
	return &resultadosService{
		log: log,
	}
}
