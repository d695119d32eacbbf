package main

import (
	"fmt"

	"github.com/AUKUS561/redsig/keys"
	"github.com/AUKUS561/redsig/schemes"
)

const redactedNotValid = "Redacted set is not valid."

func runRedact(args []string) error {
	if len(args) < 1 {
		return errInvalid("redact requires a scheme argument")
	}
	switch args[0] {
	case "small":
		if len(args) != 6 {
			return errInvalid("redact small requires <ver_key_file> <set_file> <subset_file> <policy> <sig_file>")
		}
		kf, err := readKeyFile(args[1], true)
		if err != nil {
			return err
		}
		vk, err := keys.DecodeSmallUniverseVerifyKey(kf.DER, kf.Universe)
		if err != nil {
			return err
		}
		set, err := readLines(args[2])
		if err != nil {
			return err
		}
		subset, err := readLines(args[3])
		if err != nil {
			return err
		}
		sigDER, err := readSignatureFile(args[5])
		if err != nil {
			return err
		}
		sig, err := schemes.DecodeSmallUniverseSignature(sigDER)
		if err != nil {
			return err
		}
		redacted := schemes.SmallUniverseRedact(vk.Universe, set, subset, sig)
		if redacted == nil {
			fmt.Println(redactedNotValid)
			return nil
		}
		out, err := schemes.EncodeSmallUniverseSignature(redacted)
		if err != nil {
			return err
		}
		fmt.Println(b64(out))
		return nil

	case "large":
		if len(args) != 6 {
			return errInvalid("redact large requires <ver_key_file> <set_file> <subset_file> <policy> <sig_file>")
		}
		kf, err := readKeyFile(args[1], false)
		if err != nil {
			return err
		}
		_, err = keys.DecodeLargeUniverseVerifyKey(kf.DER)
		if err != nil {
			return err
		}
		set, err := readLines(args[2])
		if err != nil {
			return err
		}
		subset, err := readLines(args[3])
		if err != nil {
			return err
		}
		sigDER, err := readSignatureFile(args[5])
		if err != nil {
			return err
		}
		sig, err := schemes.DecodeLargeUniverseSignature(sigDER)
		if err != nil {
			return err
		}
		redacted := schemes.LargeUniverseRedact(set, subset, sig, args[4])
		if redacted == nil {
			fmt.Println(redactedNotValid)
			return nil
		}
		out, err := schemes.EncodeLargeUniverseSignature(redacted)
		if err != nil {
			return err
		}
		fmt.Println(b64(out))
		return nil

	case "derler":
		if len(args) != 4 {
			return errInvalid("redact derler requires <ver_key_file> <set_file> <subset_file> <sig_file>")
		}
		kf, err := readKeyFile(args[1], false)
		if err != nil {
			return err
		}
		_, err = keys.DecodeDerlerVerifyKey(kf.DER)
		if err != nil {
			return err
		}
		set, err := readLines(args[2])
		if err != nil {
			return err
		}
		subset, err := readLines(args[3])
		if err != nil {
			return err
		}
		sigDER, err := readSignatureFile(args[4])
		if err != nil {
			return err
		}
		sig, err := schemes.DecodeDerlerSignature(sigDER)
		if err != nil {
			return err
		}
		redacted := schemes.DerlerRedact(set, subset, sig)
		if redacted == nil {
			fmt.Println(redactedNotValid)
			return nil
		}
		out, err := schemes.EncodeDerlerSignature(redacted)
		if err != nil {
			return err
		}
		fmt.Println(b64(out))
		return nil

	default:
		return errInvalid("unknown redact scheme: " + args[0])
	}
}
