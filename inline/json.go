package inline

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
)

// Request is what a download job receives.
type Request struct {
	Series       string `json:"series" jsonschema:"description=Series title"`
	Season       int    `json:"season,omitempty" jsonschema:"description=Season number"`
	Slot         string `json:"slot,omitempty" jsonschema:"description=Form field carrying the selection"`
	Episodes     string `json:"episodes" jsonschema:"description=Encoded episode selection or * for the whole season"`
	DownloadType string `json:"download_type" jsonschema:"enum=episodes,enum=full_season"`
}

// String renders the request as S<season> E<episodes>.
func (r *Request) String() string {
	return fmt.Sprintf("S%d E%s", r.Season, r.Episodes)
}

func writeJson(out io.Writer, request *Request) error {
	data, err := json.Marshal(request)
	if err != nil {
		return err
	}

	_, err = out.Write(append(data, '\n'))
	return err
}

// Schema returns the JSON schema of Request.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}
	return reflector.Reflect(&Request{})
}
