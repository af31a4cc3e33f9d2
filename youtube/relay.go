package youtube

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	hmacext "github.com/alexellis/hmac/v2"
	"github.com/cinerow/cinerow/apierr"
	"github.com/cinerow/cinerow/network"
	"github.com/cinerow/cinerow/util"
)

// RelayPath is the channel endpoint served by a cinerow relay.
const RelayPath = "/api/youtube"

// SignatureHeader holds "sha256=<hex>" over SignedMessage when the relay
// has a shared secret.
const SignatureHeader = "X-Cinerow-Signature"

// SignedMessage is the part of a relay request covered by the signature.
// The base URL is excluded so a relay behind a path prefix still verifies.
func SignedMessage(path, rawQuery string) string {
	return path + "?" + rawQuery
}

// Sign returns the SignatureHeader value for message.
func Sign(secret, message string) string {
	return "sha256=" + hex.EncodeToString(hmacext.Sign([]byte(message), []byte(secret), sha256.New))
}

// RelayClient fetches channel videos through a relay that holds the API key.
type RelayClient struct {
	baseURL string
	secret  string
	http    *http.Client
}

// NewRelay returns a client for the relay at baseURL. A nil h uses the shared client.
func NewRelay(baseURL string, h *http.Client) *RelayClient {
	if h == nil {
		h = network.Client
	}
	return &RelayClient{baseURL: strings.TrimSuffix(baseURL, "/"), http: h}
}

// WithSecret signs every request with secret.
func (r *RelayClient) WithSecret(secret string) *RelayClient {
	r.secret = secret
	return r
}

// ChannelVideos asks the relay for the recent videos of the named channel.
// A failed call is returned as is.
func (r *RelayClient) ChannelVideos(ctx context.Context, name string) (*SearchResponse, error) {
	query := url.Values{"channelName": {name}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+RelayPath+"?"+query, nil)
	if err != nil {
		return nil, fmt.Errorf("build relay request: %w", err)
	}
	if r.secret != "" {
		req.Header.Set(SignatureHeader, Sign(r.secret, SignedMessage(RelayPath, query)))
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return nil, &apierr.NetworkError{Service: "relay", Err: err}
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)

		if resp.StatusCode == http.StatusNotFound {
			return nil, &apierr.NotFoundError{What: "channel", Query: name}
		}
		return nil, &apierr.UpstreamError{Service: "relay", Status: resp.StatusCode, Message: body.Error}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierr.NetworkError{Service: "relay", Err: err}
	}

	out, err := decodeSearch(body)
	if err != nil {
		return nil, fmt.Errorf("decode relay response: %w", err)
	}
	return out, nil
}
