package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-ctap/fido2-authenticator/pkg/ctap"
	"github.com/go-ctap/fido2-authenticator/pkg/ctap/handlers"
	"github.com/go-ctap/fido2-authenticator/pkg/ctaphid"
	"github.com/go-ctap/fido2-authenticator/pkg/ctaptypes"
)

func pad64(b []byte) []byte {
	out := make([]byte, 64)
	copy(out, b)
	return out
}

func main() {
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelDebug)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	}))

	authenticator := ctap.New(
		ctap.WithHandler(ctaptypes.AuthenticatorReset, ctap.HandlerFunc(handlers.Reset)),
		ctap.WithHandler(ctaptypes.AuthenticatorSelection, ctap.HandlerFunc(handlers.Selection)),
	)

	framer := ctaphid.NewFramer()

	initPacket := pad64([]byte{
		0xFF, 0xFF, 0xFF, 0xFF,
		0x86,
		0x00, 0x08,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	})

	initMsg := framer.Handle(initPacket)
	if initMsg == nil || initMsg.Cmd != ctaphid.CTAPHID_INIT {
		panic("expected a completed INIT response")
	}
	resp, ok := ctaphid.UnmarshalInitResponse(initMsg.Payload)
	if !ok {
		panic("malformed INIT response")
	}
	logger.Info("allocated channel", "cid", hex.EncodeToString(resp.CID[:]))

	cborPacket := pad64([]byte{
		resp.CID[0], resp.CID[1], resp.CID[2], resp.CID[3],
		0x90,
		0x00, 0x01,
		byte(ctaptypes.AuthenticatorGetInfo),
	})

	cborMsg := framer.Handle(cborPacket)
	if cborMsg == nil || cborMsg.Cmd != ctaphid.CTAPHID_CBOR {
		panic("expected a completed CBOR delivery")
	}

	response := authenticator.CBOR(cborMsg.Payload)
	fmt.Printf("authenticatorGetInfo status=0x%02X payload=%s\n", response[0], hex.EncodeToString(response[1:]))

	packets, err := framer.Emit(ctaphid.CTAPHID_CBOR, resp.CID, response)
	if err != nil {
		panic(err)
	}
	logger.Info("emitted response", "packets", len(packets))
}
