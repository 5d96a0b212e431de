package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/brianvoe/gofakeit/v7"
)

// RandomAlphaNum generates random alphanumeric string
// in case length <= 0 it returns empty string
func RandomAlphaNum(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	if length <= 0 {
		return "", fmt.Errorf("length must be greater than 0")
	}

	randomString := make([]byte, length)
	for i := range randomString {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		randomString[i] = charset[num.Int64()]
	}

	return string(randomString), nil
}

// RandomStakerAddress generates a well-formed staker address.
func RandomStakerAddress() string {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return "0x" + hex.EncodeToString(buf)
}

// RandomProposalTitle generates a title within the accepted length.
func RandomProposalTitle() string {
	title := gofakeit.Sentence(3)
	if len(title) > 50 {
		title = title[:50]
	}
	return title
}

// RandomProposalDescription generates a description within the accepted
// length.
func RandomProposalDescription() string {
	desc := gofakeit.Sentence(10)
	if len(desc) > 500 {
		desc = desc[:500]
	}
	return desc
}

// RandomStakeAmount generates a positive stake amount.
func RandomStakeAmount() uint64 {
	return gofakeit.Uint64()%1_000_000 + 1
}
