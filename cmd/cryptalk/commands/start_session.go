package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptalk/internal/crypto"
	"cryptalk/internal/domain"
	"cryptalk/internal/protocol/ratchet"
	"cryptalk/internal/util/memzero"
)

// startSessionCmd derives a shared secret with the peer's identity key and
// bootstraps a ratchet session. The initiator runs it with just the peer
// key and shares the printed ratchet public key out of band; the responder
// passes that key via --their-ratchet.
func startSessionCmd() *cobra.Command {
	var theirRatchet string

	cmd := &cobra.Command{
		Use:   "start-session <peer-public-key>",
		Short: "Establish a secure session with a peer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			peerPub, err := parsePublicKey(args[0])
			if err != nil {
				return err
			}

			id, err := appCtx.Identity.LoadIdentity(passphrase)
			if err != nil {
				return err
			}

			// Immediate shared secret from the two identity keys. This is
			// the simplified bootstrap, not an X3DH handshake.
			secret, err := crypto.DH(id.XPriv, peerPub)
			if err != nil {
				return fmt.Errorf("deriving shared secret: %w", err)
			}
			defer memzero.Wipe(secret[:])

			ratchetPair, err := appCtx.Engine.GenerateKeyPair()
			if err != nil {
				return err
			}

			var theirPub *domain.X25519Public
			if theirRatchet != "" {
				pub, err := parsePublicKey(theirRatchet)
				if err != nil {
					return err
				}
				theirPub = &pub
			}

			sid, err := appCtx.Engine.InitializeSession(secret[:], ratchetPair, theirPub)
			if err != nil {
				return err
			}
			if err := persistSession(sid); err != nil {
				return err
			}

			fmt.Printf("Session created: %s\n", sid)
			fmt.Printf("Ratchet public key: %s\n", crypto.B64(ratchetPair.Public.Slice()))
			return nil
		},
	}
	cmd.Flags().StringVar(&theirRatchet, "their-ratchet", "",
		"peer's ratchet public key (respond to an incoming session)")
	return cmd
}

// persistSession snapshots an engine session into the conversation store.
func persistSession(sid domain.SessionID) error {
	snap, err := appCtx.Engine.SnapshotSession(sid)
	if err != nil {
		return err
	}
	defer ratchet.WipeSnapshot(&snap)
	return appCtx.Conversations.SaveConversation(passphrase, domain.Conversation{
		Session: sid,
		State:   snap,
	})
}

// restoreSession loads a stored conversation into the engine. The engine
// assigns a fresh in-memory identifier; the stored identifier stays the
// stable handle users see.
func restoreSession(stored domain.SessionID) (domain.SessionID, error) {
	conv, ok, err := appCtx.Conversations.LoadConversation(passphrase, stored)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("no session %q; run start-session first", stored)
	}
	live := appCtx.Engine.RestoreSession(conv.State)
	ratchet.WipeSnapshot(&conv.State)
	return live, nil
}

// persistAs snapshots live engine state back under the stored identifier
// and drops the in-memory copy.
func persistAs(stored, live domain.SessionID) error {
	snap, err := appCtx.Engine.SnapshotSession(live)
	if err != nil {
		return err
	}
	defer ratchet.WipeSnapshot(&snap)
	defer appCtx.Engine.ClearSession(live)
	return appCtx.Conversations.SaveConversation(passphrase, domain.Conversation{
		Session: stored,
		State:   snap,
	})
}
