package resultados

const AckMessage = "Resultados recibidos correctamente."

// Keys read from the payload for observation.
const (
	FieldDocumento = "documento"
	FieldEAR       = "ear"
	FieldHeadPose  = "headPose"
	FieldMOR       = "mor"
	FieldMejor     = "mejor"
)

type ReceiveResultsResponse struct {
	Mensaje string `json:"mensaje"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type OptionsResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Renders     []string `json:"renders"`
	Parses      []string `json:"parses"`
}
