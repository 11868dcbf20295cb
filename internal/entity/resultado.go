package entity

// IncomingResult is one attention snapshot as read from an intake request.
// Nothing here is validated; fields the client omitted or sent with an
// unexpected type stay at their zero value.
type IncomingResult struct {
	Documento string
	EAR       *float64
	HeadPose  interface{}
	MOR       *float64
	Mejor     string
	Keys      []string
	Raw       interface{}
}
