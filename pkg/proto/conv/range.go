package conv

import (
	"fmt"

	"github.com/scripledger/scrip/pkg/api"
	pb "github.com/scripledger/scrip/pkg/proto/gen"
)

func RangeFromProto(r *pb.Range) (api.Range, error) {
	m, err := MetaFromProto(r.GetMeta())
	if err != nil {
		return api.Range{}, err
	}

	t, err := TagFromProto(r.GetTag())
	if err != nil {
		return api.Range{}, err
	}

	return api.Range{
		Meta:  m,
		Owner: api.OwnerID(r.GetOwner()),
		Tag:   t,
	}, nil
}

func RangeToProto(r api.Range) *pb.Range {
	return &pb.Range{
		Meta:  MetaToProto(r.Meta),
		Owner: OwnerToProto(r.Owner),
		Tag:   TagToProto(r.Tag),
	}
}

func RangesFromProto(rs []*pb.Range) ([]api.Range, error) {
	out := make([]api.Range, len(rs))

	for i, r := range rs {
		var err error
		if out[i], err = RangeFromProto(r); err != nil {
			return nil, fmt.Errorf("range %d: %w", i, err)
		}
	}

	return out, nil
}

func RangesToProto(rs []api.Range) []*pb.Range {
	out := make([]*pb.Range, len(rs))

	for i, r := range rs {
		out[i] = RangeToProto(r)
	}

	return out
}
