package conv

import (
	"errors"

	"github.com/scripledger/scrip/pkg/api"
	pb "github.com/scripledger/scrip/pkg/proto/gen"
)

func MetaFromProto(m *pb.RangeMeta) (api.Meta, error) {
	if m == nil {
		return api.Meta{}, errors.New("missing: meta")
	}

	return api.Meta{
		Start: api.ShareID(m.Start),
		Stop:  api.ShareID(m.Stop),
	}, nil
}

func MetaToProto(m api.Meta) *pb.RangeMeta {
	return &pb.RangeMeta{
		Start: uint64(m.Start),
		Stop:  uint64(m.Stop),
	}
}
