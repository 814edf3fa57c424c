package conv

import (
	"errors"

	"github.com/scripledger/scrip/pkg/api"
)

func OwnerFromProto(p string) (api.OwnerID, error) {
	oID := api.OwnerID(p)

	if oID == api.ZeroOwner {
		return oID, errors.New("missing: owner")
	}

	return oID, nil
}

func OwnerToProto(oID api.OwnerID) string {
	return string(oID)
}
