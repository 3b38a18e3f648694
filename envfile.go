// Package keyenv renders exported secret sets in dotenv format.
package keyenv

import (
	"context"
	"strings"
)

// envQuoteTriggers are the characters that force a value to be quoted.
const envQuoteTriggers = " \t\n\"'\\$"

// envEscaper rewrites the characters that are significant inside a
// double-quoted dotenv value. Backslash comes first so the escapes
// introduced for the other characters are not escaped again.
var envEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	`$`, `\$`,
)

// RenderEnvFile renders secrets as dotenv text, one KEY=value line per
// secret in the given order. Values containing whitespace, quotes,
// backslashes, or $ are double-quoted with the significant characters
// escaped; all other values are emitted verbatim.
func RenderEnvFile(secrets []SecretWithValueAndInheritance) string {
	var b strings.Builder
	for _, secret := range secrets {
		b.WriteString(secret.Key)
		b.WriteByte('=')
		if strings.ContainsAny(secret.Value, envQuoteTriggers) {
			b.WriteByte('"')
			b.WriteString(envEscaper.Replace(secret.Value))
			b.WriteByte('"')
		} else {
			b.WriteString(secret.Value)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// EnvFile exports an environment and renders it as dotenv text. The line
// order is the server's export order; the client does not sort.
func (c *Client) EnvFile(ctx context.Context, projectID, environment string) (string, error) {
	secrets, err := c.GetSecrets(ctx, projectID, environment)
	if err != nil {
		return "", err
	}
	return RenderEnvFile(secrets), nil
}
