package conv

import (
	"github.com/scripledger/scrip/pkg/api"
)

func TagFromProto(p []byte) (api.Tag, error) {
	return api.TagFromBytes(p)
}

func TagToProto(t api.Tag) []byte {
	return t.Bytes()
}
