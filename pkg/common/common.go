package common

import (
	"os"
	"strings"

	"github.com/bwmarrin/snowflake"
)

const (
	ENABLED  = "enabled"
	DISABLED = "disabled"
)

var idNode *snowflake.Node

func init() {
	var err error
	idNode, err = snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
}

// NextID returns a cluster-unique int64 identifier.
func NextID() int64 {
	return idNode.Generate().Int64()
}

// NextRef returns a short base36 reference string, used to tag checkout
// handoffs so the shop owner can match a WhatsApp message to a session.
func NextRef() string {
	return strings.ToUpper(idNode.Generate().Base36())
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
