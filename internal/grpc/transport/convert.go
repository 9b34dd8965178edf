package transport

import (
	"time"

	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
	pb "github.com/GriffinCanCode/InspectOS/proto/transport"
)

// streamFromProto converts a daemon stream record to the shared type
func streamFromProto(info *pb.StreamInfo) types.Stream {
	return types.Stream{
		ID:           info.GetStreamId(),
		Manufacturer: info.GetManufacturer(),
		Model:        info.GetModel(),
		Serial:       info.GetSerial(),
		ConnectedAt:  time.Now(),
	}
}

// descriptorFromProto combines a process event with its stream's device identity
func descriptorFromProto(info *pb.ProcessInfo, stream types.Stream) types.ProcessDescriptor {
	return types.ProcessDescriptor{
		Manufacturer: stream.Manufacturer,
		Model:        stream.Model,
		Process:      info.GetName(),
		PID:          info.GetPid(),
		StreamID:     info.GetStreamId(),
	}
}
