package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "Claims Copilot Backend",
    "description": "API for the role-gated insurance-claim case dashboard: sessions, case registry, knowledge copilot, policy drift, what-if compliance simulation, and analytics",
    "version": "1.0"
  },
  "basePath": "/",
  "paths": {}
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}
