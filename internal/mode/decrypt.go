package mode

import (
	"fmt"
	"runtime"
	"sync"

	qcipher "github.com/quantalock/qcipher-go"
	"github.com/quantalock/qcipher-go/internal/block"
)

// parallelDecryptThreshold is the block count at or above which Decrypt fans work
// out across a worker pool instead of running the loop inline. Below it,
// goroutine setup would cost more than it saves.
const parallelDecryptThreshold = 4

// Decrypt reverses Encrypt: each ciphertext block is decrypted with the
// round transform and then XORed against the chaining value that was used
// to produce it (the IV for block zero, the raw previous ciphertext block
// otherwise; never the previously decrypted plaintext). The plaintext
// buffer is finally truncated to originalSize; no padding-validity check is
// performed, since the stored size is authoritative.
//
// Unlike Encrypt, every block's chaining input is a slice of the ciphertext
// the caller already has in hand rather than something computed by a prior
// iteration, so blocks can be decrypted independently and in any order.
// Decrypt exploits that with a bounded worker pool once there is enough
// work to justify it.
func Decrypt(c *qcipher.QCipher, ciphertext []byte, nonce []byte, iv []byte, originalSize uint64) ([]byte, error) {
	if len(iv) != qcipher.IVSize {
		return nil, fmt.Errorf("mode: iv must be %d bytes", qcipher.IVSize)
	}

	numBlocks := (len(ciphertext) + qcipher.BlockSize - 1) / qcipher.BlockSize
	if numBlocks == 0 {
		if originalSize != 0 {
			return nil, fmt.Errorf("%w: empty ciphertext with non-zero original size", qcipher.ErrCorruptContainer)
		}
		return []byte{}, nil
	}

	cipherBlocks := make([][]byte, numBlocks)
	prevBlocks := make([][]byte, numBlocks)
	for i := 0; i < numBlocks; i++ {
		start := i * qcipher.BlockSize
		end := start + qcipher.BlockSize
		if end <= len(ciphertext) {
			cipherBlocks[i] = ciphertext[start:end]
		} else {
			padded := make([]byte, qcipher.BlockSize)
			copy(padded, ciphertext[start:])
			cipherBlocks[i] = padded
		}
		if i == 0 {
			prevBlocks[i] = iv
		} else {
			prevBlocks[i] = cipherBlocks[i-1]
		}
	}

	plainBlocks := make([][]byte, numBlocks)
	var errOnce sync.Once
	var decErr error

	decryptOne := func(i int) {
		d, err := block.DecryptBlock(c, cipherBlocks[i], uint64(i), nonce)
		if err != nil {
			errOnce.Do(func() { decErr = err })
			return
		}
		prev := prevBlocks[i]
		p := make([]byte, qcipher.BlockSize)
		for j := range p {
			p[j] = d[j] ^ prev[j%len(prev)]
		}
		plainBlocks[i] = p
	}

	if numBlocks < parallelDecryptThreshold {
		for i := 0; i < numBlocks; i++ {
			decryptOne(i)
		}
	} else {
		numWorkers := runtime.GOMAXPROCS(0)
		if numWorkers > numBlocks {
			numWorkers = numBlocks
		}
		blocksPerWorker := (numBlocks + numWorkers - 1) / numWorkers

		var wg sync.WaitGroup
		for w := 0; w < numWorkers; w++ {
			start := w * blocksPerWorker
			end := start + blocksPerWorker
			if end > numBlocks {
				end = numBlocks
			}
			if start >= numBlocks {
				break
			}
			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				for i := start; i < end; i++ {
					decryptOne(i)
				}
			}(start, end)
		}
		wg.Wait()
	}

	if decErr != nil {
		return nil, decErr
	}

	plaintext := make([]byte, 0, numBlocks*qcipher.BlockSize)
	for _, p := range plainBlocks {
		plaintext = append(plaintext, p...)
	}
	if originalSize > uint64(len(plaintext)) {
		return nil, fmt.Errorf("%w: stored original size exceeds decrypted length", qcipher.ErrCorruptContainer)
	}
	return plaintext[:originalSize], nil
}
